package levels

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTable(t *testing.T) {
	tbl, err := LoadTable()
	require.NoError(t, err)
	require.Len(t, tbl.Levels, Last-First+1)

	for id := First; id <= Last; id++ {
		lvl := tbl.Lookup(id)
		assert.Equal(t, id, lvl.ID)
		assert.NotEmpty(t, lvl.Background)
		assert.NotEmpty(t, lvl.Mask)
	}
	assert.Equal(t, "image/cave background.png", tbl.Lookup(3).Background)
	assert.Equal(t, tbl.Lookup(4).Mask, tbl.Lookup(1).Mask)
}

func TestLookupFallsBackToFirst(t *testing.T) {
	tbl, err := LoadTable()
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Lookup(99).ID)
	assert.Equal(t, 1, tbl.Lookup(0).ID)
}

func TestLoadTableErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.yaml": {Data: []byte("levels: []\n")},
		"bad.yaml":   {Data: []byte("levels: [\n")},
	}
	_, err := LoadTableFromFS(fsys, "empty.yaml")
	assert.Error(t, err)
	_, err = LoadTableFromFS(fsys, "bad.yaml")
	assert.Error(t, err)
	_, err = LoadTableFromFS(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestPlayable(t *testing.T) {
	assert.False(t, Playable(0))
	assert.True(t, Playable(1))
	assert.True(t, Playable(4))
	assert.False(t, Playable(5))
}
