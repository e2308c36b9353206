package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStorage(bucket, "https://cdn.example.com/files/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	stored, err := store.Put(ctx, "uploads/cover_1700000000000.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/uploads/cover_1700000000000.png", stored.URL)
	assert.Equal(t, int64(len("png-bytes")), stored.Size)

	attrs, err := bucket.Attributes(ctx, stored.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, stored.Key))
	exists, err := bucket.Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, stored.Key))
}

func TestBlobStorage_NoPublicBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStorage(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	stored, err := store.Put(context.Background(), "k.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "k.jpg", stored.URL)
}
