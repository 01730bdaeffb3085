package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileResumeStore {
	t.Helper()
	store, err := NewFileResumeStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	require.NoError(t, store.Save(ctx, "Ankit", "resume text v1"))

	text, ok, err := store.Load(ctx, "Ankit")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "resume text v1", text)
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	require.NoError(t, store.Save(ctx, "Ankit", "first version"))
	require.NoError(t, store.Save(ctx, "Ankit", "second version"))

	text, ok, err := store.Load(ctx, "Ankit")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second version", text, "load must return only the latest save, no merge")
}

func TestFileStoreMissingUser(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	text, ok, err := store.Load(ctx, "Medha")
	require.NoError(t, err, "a missing entry is not an error")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestFileStoreCaseInsensitiveKey(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	require.NoError(t, store.Save(ctx, "Ankit", "resume text"))

	text, ok, err := store.Load(ctx, "ANKIT")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "resume text", text)
}

func TestFileStoreConcurrentUsers(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	const users = 8
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user%d", i)
			for j := 0; j < 10; j++ {
				_ = store.Save(ctx, user, fmt.Sprintf("resume %d-%d", i, j))
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		text, ok, err := store.Load(ctx, fmt.Sprintf("user%d", i))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("resume %d-9", i), text)
	}
}
