// Package storage keeps encoded documents in a pebble database keyed by ksuid.
//
// Documents are opaque byte strings produced through the channel package.
// Put and Get expose each document as an in-memory channel so that the same
// codecs used for files also work against the store.
package storage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/filer/pkg/channel"
)

var (
	// ErrNotFound is returned when no document exists for an id
	ErrNotFound = errors.New("document not found")
)

// Options configures a Store
type Options struct {
	Sync   bool         // fsync every write
	Logger *slog.Logger // defaults to slog.Default()
}

// Store is a pebble-backed document store. It is safe for concurrent use;
// the channels it hands out are not.
type Store struct {
	db     *pebble.DB
	write  *pebble.WriteOptions
	logger *slog.Logger
}

// Open opens or creates the store at path
func Open(path string, opts Options) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	write := pebble.NoSync
	if opts.Sync {
		write = pebble.Sync
	}

	logger.Debug("store opened", "path", path, "sync", opts.Sync)
	return &Store{db: db, write: write, logger: logger}, nil
}

// Create stores data under a new id
func (s *Store) Create(data []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, s.write); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.logger.Debug("document created", "id", id.String(), "bytes", len(data))
	return id, nil
}

// Read returns a copy of the document stored under id
func (s *Store) Read(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document %s: %w", id, err)
	}

	// data is only valid until closer is closed
	out := make([]byte, len(data))
	copy(out, data)
	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", id, err)
	}
	return out, nil
}

// Update replaces an existing document
func (s *Store) Update(id ksuid.KSUID, data []byte) error {
	if _, err := s.Read(id); err != nil {
		return err
	}
	if err := s.db.Set(id.Bytes(), data, s.write); err != nil {
		return fmt.Errorf("failed to update document %s: %w", id, err)
	}

	s.logger.Debug("document updated", "id", id.String(), "bytes", len(data))
	return nil
}

// Delete removes a document. Deleting a missing id returns ErrNotFound.
func (s *Store) Delete(id ksuid.KSUID) error {
	if _, err := s.Read(id); err != nil {
		return err
	}
	if err := s.db.Delete(id.Bytes(), s.write); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}

	s.logger.Debug("document deleted", "id", id.String())
	return nil
}

// List returns every document id in creation order
func (s *Store) List() ([]ksuid.KSUID, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			s.logger.Warn("skipping malformed key", "key", fmt.Sprintf("%x", iter.Key()))
			continue
		}
		ids = append(ids, id)
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return ids, nil
}

// Put runs fn against a fresh write channel and stores what it wrote as a
// new document. Nothing is stored if fn fails.
func (s *Store) Put(fn func(w channel.Writer) error) (ksuid.KSUID, error) {
	w := channel.NewBufferWriter()
	if err := fn(w); err != nil {
		return ksuid.Nil, err
	}
	return s.Create(w.Bytes())
}

// Get runs fn against a read channel over the document stored under id
func (s *Store) Get(id ksuid.KSUID, fn func(r channel.Reader) error) error {
	data, err := s.Read(id)
	if err != nil {
		return err
	}
	return fn(channel.NewBufferReader(data))
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// ParseID parses the string form of a document id
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("invalid document id %q: %w", s, err)
	}
	return id, nil
}
