package bboltstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	files := map[string][]byte{
		"src/main.py":  []byte(`{"name":"main.py"}`),
		"src/utils.py": []byte(`{"name":"utils.py"}`),
	}
	require.NoError(t, store.SaveBaseline("main", files))

	loaded, err := store.LoadBaseline("main")
	require.NoError(t, err)
	assert.Equal(t, files, loaded)
}

func TestStore_LoadMissingBaseline(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadBaseline("never-saved")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_SaveReplacesWholeBaseline(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveBaseline("main", map[string][]byte{
		"old.py":  []byte("old"),
		"gone.py": []byte("gone"),
	}))
	require.NoError(t, store.SaveBaseline("main", map[string][]byte{
		"new.py": []byte("new"),
	}))

	loaded, err := store.LoadBaseline("main")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"new.py": []byte("new")}, loaded)
}

func TestStore_BaselinesAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveBaseline("a", map[string][]byte{"x.go": []byte("1")}))
	require.NoError(t, store.SaveBaseline("b", map[string][]byte{"x.go": []byte("2")}))

	a, err := store.LoadBaseline("a")
	require.NoError(t, err)
	b, err := store.LoadBaseline("b")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), a["x.go"])
	assert.Equal(t, []byte("2"), b["x.go"])
}

func TestStore_DeleteBaseline(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveBaseline("main", map[string][]byte{"x.rs": []byte("r")}))
	require.NoError(t, store.DeleteBaseline("main"))

	loaded, err := store.LoadBaseline("main")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Idempotent
	require.NoError(t, store.DeleteBaseline("main"))
}

func TestStore_EmptyNameRejected(t *testing.T) {
	store := newTestStore(t)

	require.Error(t, store.SaveBaseline("", map[string][]byte{"x": []byte("y")}))
}
