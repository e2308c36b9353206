package service

import (
	"context"
	"io"
)

// StoredFile describes an uploaded object.
type StoredFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum,omitempty"`
}

// FileStorage persists uploaded blobs and hands back public URLs.
type FileStorage interface {
	// Put writes the content under key.
	Put(ctx context.Context, key, contentType string, content io.Reader) (*StoredFile, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
