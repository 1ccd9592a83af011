package gamedata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissing is returned when the app-data directory or a file inside it
// does not exist
var ErrMissing = errors.New("not found in app data")

// AppData is a directory that holds snapshot files
type AppData struct {
	Root string
}

// NewAppData returns an AppData rooted at root
func NewAppData(root string) AppData {
	return AppData{Root: root}
}

// Path returns the location of name inside the root
func (a AppData) Path(name string) string {
	return filepath.Join(a.Root, name)
}

// Ensure creates the root directory if it does not exist
func (a AppData) Ensure() error {
	if err := os.MkdirAll(a.Root, 0750); err != nil {
		return fmt.Errorf("failed to create app data directory: %w", err)
	}
	return nil
}

// Check verifies that the root exists and contains name
func (a AppData) Check(name string) error {
	if _, err := os.Stat(a.Root); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("app data directory %s: %w", a.Root, ErrMissing)
		}
		return err
	}
	if _, err := os.Stat(a.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", name, ErrMissing)
		}
		return err
	}
	return nil
}
