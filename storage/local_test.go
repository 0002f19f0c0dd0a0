package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadDownloadDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.New()

	path, err := store.Upload(ctx, id, "compliance export.csv", strings.NewReader("header\nrow"))
	require.NoError(t, err)
	assert.Contains(t, path, id.String())
	assert.NotContains(t, path, " ")

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, "header\nrow", string(content))

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorageDownloadMissingFile(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Download(context.Background(), "nope/missing.csv")
	assert.Error(t, err)
}

func TestGenerateStoragePathSanitizesFilename(t *testing.T) {
	id := uuid.MustParse("aabbccdd-0000-0000-0000-000000000000")

	path := generateStoragePath(id, "my export/file.csv")

	assert.Equal(t, "aa/aabbccdd-0000-0000-0000-000000000000_my_export_file.csv", path)
}
