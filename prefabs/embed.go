package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PrefabsFS holds the shipped player, enemy, rules and theme tuning.
//
//go:embed *.yaml
var PrefabsFS embed.FS

// OverrideDir is searched before PrefabsFS, so a player.yaml dropped next to
// the binary wins over the shipped one.
var OverrideDir = "prefabs"

// Load reads a tuning file such as "player.yaml" or "prefabs/theme.yaml".
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime reports when the on-disk override of name last changed. It is false
// when only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(OverrideDir, filepath.FromSlash(clean))
}
