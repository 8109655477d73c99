package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"

	"petwelfare/internal/domain/service"
	"petwelfare/internal/errors"
)

func newTestStorage(t *testing.T, maxSize int64) (service.FileStorage, string) {
	t.Helper()

	root := t.TempDir()
	bucket, err := fileblob.OpenBucket(root, &fileblob.Options{NoTempDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, "uploads/", maxSize, slog.Default()), root
}

func TestBlobStorage_SaveExistsDelete(t *testing.T) {
	store, root := newTestStorage(t, 1024)
	ctx := context.Background()

	content := "%PDF-1.4 prescription"
	stored, err := store.Save(ctx, "pharmacy/public_user/2026/10/a.pdf", "application/pdf", strings.NewReader(content))
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(content))
	assert.Equal(t, hex.EncodeToString(sum[:]), stored.Checksum)
	assert.Equal(t, int64(len(content)), stored.Size)
	assert.Equal(t, "/uploads/pharmacy/public_user/2026/10/a.pdf", stored.URL)

	onDisk, err := os.ReadFile(filepath.Join(root, "pharmacy", "public_user", "2026", "10", "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk))

	ok, err := store.Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, stored.Key))
	require.NoError(t, store.Delete(ctx, stored.Key), "deleting a missing key is not an error")

	ok, err = store.Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlobStorage_SaveTooLarge(t *testing.T) {
	store, _ := newTestStorage(t, 4)
	ctx := context.Background()

	_, err := store.Save(ctx, "profile/u/big.png", "image/png", strings.NewReader("12345"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))

	ok, err := store.Exists(ctx, "profile/u/big.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlobStorage_KeyFromURL(t *testing.T) {
	store, _ := newTestStorage(t, 0)

	testCases := []struct {
		url  string
		key  string
		want bool
	}{
		{url: "/uploads/adoption/certificates/ADC-1.png", key: "adoption/certificates/ADC-1.png", want: true},
		{url: "https://pets.example.com/uploads/a/b.png?v=2", key: "a/b.png", want: true},
		{url: "/static/a.png"},
		{url: "/uploads/../etc/passwd"},
		{url: "https://pets.example.com"},
	}
	for _, tc := range testCases {
		key, ok := store.KeyFromURL(tc.url)
		assert.Equal(t, tc.want, ok, tc.url)
		assert.Equal(t, tc.key, key, tc.url)
	}
}

func TestCleanKey(t *testing.T) {
	for _, bad := range []string{"", "/", "../x", "a/../../b", "a/./b"} {
		_, err := cleanKey(bad)
		assert.Error(t, err, bad)
	}

	key, err := cleanKey("/ecommerce/x.png")
	require.NoError(t, err)
	assert.Equal(t, "ecommerce/x.png", key)
}
