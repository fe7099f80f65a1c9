package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVolume(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"64", 64, false},
		{"  100\n", 100, false},
		{"0", 0, false},
		{"128", 128, false},
		{"300", 128, false},
		{"-5", 0, false},
		{"42abc", 42, false},
		{"", DefaultVolume, true},
		{"loud", DefaultVolume, true},
		{"-", DefaultVolume, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseVolume(c.in)
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestLoadMissingFileUsesDefault(t *testing.T) {
	v, err := LoadVolume(filepath.Join(t.TempDir(), "volume.txt"))
	assert.Error(t, err)
	assert.Equal(t, DefaultVolume, v)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file", "volume.txt")

	require.NoError(t, SaveVolume(path, 96))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "96", string(data))

	v, err := LoadVolume(path)
	require.NoError(t, err)
	assert.Equal(t, 96, v)

	require.NoError(t, SaveVolume(path, 500))
	v, err = LoadVolume(path)
	require.NoError(t, err)
	assert.Equal(t, MaxVolume, v)
}
