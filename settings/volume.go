// Package settings reads and writes the music volume file: a single decimal
// integer between MinVolume and MaxVolume.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	MinVolume     = 0
	MaxVolume     = 128
	DefaultVolume = 64
)

// VolumeFile is the settings file location relative to the resources root.
const VolumeFile = "file/volume.txt"

// ClampVolume limits v to [MinVolume, MaxVolume].
func ClampVolume(v int) int {
	return max(MinVolume, min(v, MaxVolume))
}

// LoadVolume reads the volume stored at path. A missing or unreadable file
// yields DefaultVolume together with the error; out-of-range values are
// clamped.
func LoadVolume(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultVolume, fmt.Errorf("settings: read volume: %w", err)
	}
	return ParseVolume(string(data))
}

// ParseVolume parses the leading integer of s, ignoring surrounding
// whitespace and anything after it.
func ParseVolume(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return DefaultVolume, fmt.Errorf("settings: parse volume: empty file")
	}

	digits := leadingInt(fields[0])
	v, err := strconv.Atoi(digits)
	if err != nil {
		return DefaultVolume, fmt.Errorf("settings: parse volume %q: %w", fields[0], err)
	}
	return ClampVolume(v), nil
}

// SaveVolume writes v, clamped, to path, creating the directory if needed.
func SaveVolume(path string, v int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(ClampVolume(v))), 0o644); err != nil {
		return fmt.Errorf("settings: write volume: %w", err)
	}
	return nil
}

func leadingInt(s string) string {
	end := 0
	for i, r := range s {
		if r >= '0' && r <= '9' || (i == 0 && (r == '-' || r == '+')) {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}
