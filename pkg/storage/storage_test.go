package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/codec"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "store"), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_CRUD(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Create([]byte("first"))
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)

	data, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	require.NoError(t, s.Update(id, []byte("second")))
	data, err = s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	require.NoError(t, s.Delete(id))
	_, err = s.Read(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ReadReleasesResources(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "store"), Options{})
	require.NoError(t, err)

	id, err := s.Create([]byte("payload"))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		data, err := s.Read(id)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	}

	// Close reports any reader left open
	require.NoError(t, s.Close())
}

func TestStore_MissingDocument(t *testing.T) {
	s := openTestStore(t)
	id := ksuid.New()

	_, err := s.Read(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Update(id, []byte("x")), ErrNotFound)
	assert.ErrorIs(t, s.Delete(id), ErrNotFound)
}

func TestStore_List(t *testing.T) {
	s := openTestStore(t)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	var created []ksuid.KSUID
	for i := 0; i < 3; i++ {
		id, err := s.Create([]byte{byte(i)})
		require.NoError(t, err)
		created = append(created, id)
	}

	ids, err = s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, created, ids)
}

func TestStore_PutGetSequence(t *testing.T) {
	s := openTestStore(t)
	sequences := codec.NewSequenceCodec(codec.Vector2)
	items := []codec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}

	id, err := s.Put(func(w channel.Writer) error {
		return sequences.Persist(6, items, w)
	})
	require.NoError(t, err)

	var tag codec.Tag
	var got []codec.Vec2
	err = s.Get(id, func(r channel.Reader) error {
		var err error
		tag, got, err = sequences.LoadTagged(r)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, codec.Tag(6), tag)
	assert.Equal(t, items, got)
}

func TestStore_PutFailureStoresNothing(t *testing.T) {
	s := openTestStore(t)
	boom := errors.New("boom")

	_, err := s.Put(func(w channel.Writer) error {
		if err := codec.WriteInt32(w, 1); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_GetShortDocument(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Create([]byte{1, 0, 0, 0, 5, 0, 0, 0})
	require.NoError(t, err)

	err = s.Get(id, func(r channel.Reader) error {
		_, _, err := codec.NewSequenceCodec(codec.Int32).LoadTagged(r)
		return err
	})
	var shortErr *channel.ShortReadError
	assert.ErrorAs(t, err, &shortErr)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store")

	s, err := Open(path, Options{Sync: true})
	require.NoError(t, err)
	id, err := s.Create([]byte("durable"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, Options{})
	require.NoError(t, err)
	defer s.Close()

	data, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), data)
}

func TestParseID(t *testing.T) {
	id := ksuid.New()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-an-id")
	assert.Error(t, err)
}
