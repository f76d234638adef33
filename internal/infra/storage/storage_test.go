package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

func exerciseStorage(t *testing.T, s wardrobe.ObjectStorage) {
	t.Helper()
	ctx := context.Background()

	obj, err := s.Put(ctx, "items/a.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	require.Equal(t, "items/a.png", obj.Key)
	require.EqualValues(t, 9, obj.Size)
	require.NotEmpty(t, obj.ETag)

	rc, err := s.Get(ctx, "items/a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, "items/a.png"))
	require.NoError(t, s.Delete(ctx, "items/a.png"))

	_, err = s.Get(ctx, "items/a.png")
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestLocalStorage(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	exerciseStorage(t, s)
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "", []byte("x"), "image/png")
	require.Error(t, err)
	_, err = s.Get(context.Background(), "")
	require.True(t, errors.Is(err, os.ErrNotExist))

	// traversal collapses below the root instead of escaping it.
	path, err := s.resolve("../../etc/passwd")
	require.NoError(t, err)
	require.Equal(t, s.root+"/etc/passwd", path)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "acct.r2.cloudflarestorage.com", sanitizeEndpoint("https://acct.r2.cloudflarestorage.com/bucket"))
	require.Equal(t, "localhost:9000", sanitizeEndpoint(" http://localhost:9000 "))
	require.Equal(t, "", sanitizeEndpoint(""))
}

func TestTranslateGetError(t *testing.T) {
	missing := translateGetError("items/a.png", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
	require.True(t, errors.Is(missing, os.ErrNotExist))

	outage := translateGetError("items/a.png", errors.New("connection reset by peer"))
	require.Error(t, outage)
	require.False(t, errors.Is(outage, os.ErrNotExist))
}
