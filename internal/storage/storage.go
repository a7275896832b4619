package storage

//go:generate mockgen -source=storage.go -destination=storage_mock.go -package=storage

import (
	"context"
	"io"
	"strings"
)

// ObjectStore is a remote blob store addressed by key.
type ObjectStore interface {
	// Save uploads r under key and returns the public URL of the object.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Asset is an uploaded file: its public URL and the key needed to delete it.
type Asset struct {
	URL string
	Key string
}

func publicURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimLeft(key, "/")
}
