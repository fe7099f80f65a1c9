package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// First and Last bound the playable level ids.
const (
	First = 1
	Last  = 4
)

type Table struct {
	Levels []Level `yaml:"levels"`
}

// Level names the assets of one level.
type Level struct {
	ID         int    `yaml:"id"`
	Background string `yaml:"background"`
	Mask       string `yaml:"mask"`
	Music      string `yaml:"music"`
}

func LoadTable() (*Table, error) {
	return LoadTableFromFS(LevelsFS, "levels.yaml")
}

func LoadTableFromFS(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level table: %w", err)
	}
	var tbl Table
	if err := yaml.Unmarshal(data, &tbl); err != nil {
		return nil, fmt.Errorf("unmarshal level table: %w", err)
	}
	if len(tbl.Levels) == 0 {
		return nil, fmt.Errorf("level table %s is empty", name)
	}
	return &tbl, nil
}

// Lookup returns the level with the given id. Unknown ids fall back to the
// first level in the table.
func (t *Table) Lookup(id int) Level {
	for _, lvl := range t.Levels {
		if lvl.ID == id {
			return lvl
		}
	}
	return t.Levels[0]
}

// Playable reports whether id is a level the game sequences through.
func Playable(id int) bool {
	return id >= First && id <= Last
}
