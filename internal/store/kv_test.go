package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "finza.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVPutGet(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put("transactions", []byte(`[{"id":"a"}]`)))

	got, err := kv.Get("transactions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))
}

func TestKVGetMissing(t *testing.T) {
	kv := openTestKV(t)

	_, err := kv.Get("nope")
	require.Error(t, err)
	assert.True(t, IsMissing(err))
}

func TestKVPutOverwrites(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put("goals", []byte(`[]`)))
	require.NoError(t, kv.Put("goals", []byte(`[{"id":"g"}]`)))

	got, err := kv.Get("goals")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"g"}]`, string(got))
}

func TestKVPutAll(t *testing.T) {
	kv := openTestKV(t)

	entries := map[string][]byte{
		"transactions": []byte(`[]`),
		"goals":        []byte(`[{"id":"g"}]`),
		"commitments":  []byte(`[{"id":"c"}]`),
	}
	require.NoError(t, kv.PutAll(entries))

	for key, want := range entries {
		got, err := kv.Get(key)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestKVCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "finza.db")

	kv, err := OpenKV(path)
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Put("k", []byte("v")))
}
