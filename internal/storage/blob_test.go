package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/storage"
)

func newMemBlobStore() (*storage.BlobStore, *storage.AferoStore) {
	store := storage.NewAferoStore(afero.NewMemMapFs())
	return storage.NewBlobStore(store, "http://localhost:8080/uploads/"), store
}

func TestBlobStoreUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("upload returns the public url", func(t *testing.T) {
		blobs, files := newMemBlobStore()

		url, err := blobs.Upload(ctx, "avatars/user:1/pic.png", strings.NewReader("image-bytes"), false)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/avatars/user:1/pic.png", url)

		r, err := files.Get(ctx, "avatars/user:1/pic.png")
		require.NoError(t, err)
		defer r.Close()
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(content))
	})

	t.Run("leading slash is stripped", func(t *testing.T) {
		blobs, _ := newMemBlobStore()

		url, err := blobs.Upload(ctx, "/avatars/pic.png", strings.NewReader("x"), false)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/avatars/pic.png", url)
	})

	t.Run("existing blob without upsert fails", func(t *testing.T) {
		blobs, _ := newMemBlobStore()

		_, err := blobs.Upload(ctx, "avatars/pic.png", strings.NewReader("first"), false)
		require.NoError(t, err)

		_, err = blobs.Upload(ctx, "avatars/pic.png", strings.NewReader("second"), false)
		assert.ErrorIs(t, err, storage.ErrBlobExists)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		blobs, files := newMemBlobStore()

		_, err := blobs.Upload(ctx, "avatars/pic.png", strings.NewReader("first"), false)
		require.NoError(t, err)

		_, err = blobs.Upload(ctx, "avatars/pic.png", strings.NewReader("second"), true)
		require.NoError(t, err)

		r, err := files.Get(ctx, "avatars/pic.png")
		require.NoError(t, err)
		defer r.Close()
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		blobs, _ := newMemBlobStore()

		_, err := blobs.Upload(ctx, "../etc/passwd", strings.NewReader("x"), true)
		assert.Error(t, err)

		_, err = blobs.Upload(ctx, "avatars/../../secret", strings.NewReader("x"), true)
		assert.Error(t, err)
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		blobs, _ := newMemBlobStore()

		_, err := blobs.Upload(ctx, "", strings.NewReader("x"), true)
		assert.Error(t, err)
	})
}

func TestAferoStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewAferoStore(afero.NewMemMapFs())

	n, err := store.Save(ctx, "nested/dir/file.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	exists, err := store.Exists(ctx, "nested/dir/file.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "nested/dir/file.txt"))

	exists, err = store.Exists(ctx, "nested/dir/file.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}
