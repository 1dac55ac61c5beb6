package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrBlobExists is returned by Upload when upsert is false and the key is
// already taken.
var ErrBlobExists = errors.New("blob already exists at this path")

// BlobStore uploads user content into a Store and hands back the public
// address it will be served from.
type BlobStore struct {
	store   Store
	baseURL string
}

// NewBlobStore creates a BlobStore. baseURL is the public prefix the stored
// paths are served under (e.g. "http://localhost:8080/uploads").
func NewBlobStore(store Store, baseURL string) *BlobStore {
	return &BlobStore{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes the blob at the given logical path and returns its public
// URL. With upsert false an existing blob at the same path is an error; with
// upsert true it is replaced.
func (b *BlobStore) Upload(ctx context.Context, blobPath string, reader io.Reader, upsert bool) (string, error) {
	blobPath = path.Clean(strings.TrimLeft(blobPath, "/"))
	if blobPath == "." || strings.Contains(blobPath, "..") {
		return "", fmt.Errorf("invalid blob path %q", blobPath)
	}

	if !upsert {
		exists, err := b.store.Exists(ctx, blobPath)
		if err != nil {
			return "", fmt.Errorf("failed to check blob existence: %w", err)
		}
		if exists {
			return "", ErrBlobExists
		}
	}

	if _, err := b.store.Save(ctx, blobPath, reader); err != nil {
		return "", fmt.Errorf("failed to save blob: %w", err)
	}

	return b.baseURL + "/" + blobPath, nil
}
