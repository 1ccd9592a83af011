// Package di provides the dependency container used by the filer CLI
package di

import (
	"log/slog"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/config"
	"github.com/ssargent/filer/pkg/gamedata"
	"github.com/ssargent/filer/pkg/storage"
)

// StoreOpener opens a document store
type StoreOpener func(path string, opts storage.Options) (*storage.Store, error)

// Container holds all the dependencies for the application
type Container struct {
	config    *config.Config
	logger    *slog.Logger
	openStore StoreOpener
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		config:    cfg,
		logger:    logger,
		openStore: storage.Open,
	}
}

// Config returns the loaded configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the application logger
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// OpenStore opens the document store described by the configuration. The
// caller closes it.
func (c *Container) OpenStore() (*storage.Store, error) {
	path := c.config.StorePath()
	c.logger.Debug("opening store", "path", path)
	return c.openStore(path, storage.Options{
		Sync:   c.config.Store.Sync,
		Logger: c.logger,
	})
}

// SetStoreOpener allows overriding how the store is opened (for testing)
func (c *Container) SetStoreOpener(opener StoreOpener) {
	c.openStore = opener
}

// AppData returns the snapshot directory
func (c *Container) AppData() gamedata.AppData {
	return gamedata.NewAppData(c.config.AppDataDir)
}

// ChannelOptions returns the options for file channels
func (c *Container) ChannelOptions() channel.Options {
	return channel.Options{BufferSize: c.config.Channel.BufferSize}
}

// SnapshotOptions returns the options for writing snapshots
func (c *Container) SnapshotOptions() gamedata.SnapshotOptions {
	return gamedata.SnapshotOptions{Compress: c.config.Snapshot.Compress}
}
