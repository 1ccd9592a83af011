package di

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/filer/pkg/config"
	"github.com/ssargent/filer/pkg/storage"
)

func TestNewContainer_Defaults(t *testing.T) {
	c := NewContainer(nil, nil)

	assert.Equal(t, config.DefaultConfig(), c.Config())
	assert.NotNil(t, c.Logger())
	assert.Equal(t, 4096, c.ChannelOptions().BufferSize)
	assert.True(t, c.SnapshotOptions().Compress)
	assert.Equal(t, "./data/appdata", c.AppData().Root)
}

func TestContainer_OpenStore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Store.Sync = true

	c := NewContainer(cfg, nil)
	s, err := c.OpenStore()
	require.NoError(t, err)
	defer s.Close()

	assert.DirExists(t, filepath.Join(cfg.DataDir, "store"))
}

func TestContainer_SetStoreOpener(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = "/srv/filer"
	c := NewContainer(cfg, nil)

	boom := errors.New("boom")
	var gotPath string
	var gotOpts storage.Options
	c.SetStoreOpener(func(path string, opts storage.Options) (*storage.Store, error) {
		gotPath = path
		gotOpts = opts
		return nil, boom
	})

	_, err := c.OpenStore()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, filepath.Join("/srv/filer", "store"), gotPath)
	assert.False(t, gotOpts.Sync)
	assert.Same(t, c.Logger(), gotOpts.Logger)
}
