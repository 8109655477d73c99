package impl

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"petwelfare/config"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/service"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func createTestUploadService(t *testing.T, maxSize int64) (*uploadService, *mockSvc.MockFileStorage) {
	storage := mockSvc.NewMockFileStorage(t)
	cfg := newTestConfig()
	cfg.Storage = &config.StorageConfig{Root: t.TempDir(), PublicPrefix: "/uploads", MaxUploadSize: maxSize}

	srv := NewUploadService(UploadServiceParams{
		Storage: storage,
		Config:  cfg,
		Logger:  newDiscardLogger(),
	}).(*uploadService)
	srv.now = func() time.Time { return fixedNow }

	return srv, storage
}

func TestUploadService_Upload(t *testing.T) {
	t.Run("image under module and role", func(t *testing.T) {
		srv, storage := createTestUploadService(t, 1<<20)
		var written []byte

		storage.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("string"), "image/png", mock.Anything).
			RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (*service.StoredFile, error) {
				body, err := io.ReadAll(r)
				if err != nil {
					return nil, err
				}
				written = body

				return &service.StoredFile{Key: key, URL: "/uploads/" + key, Size: int64(len(body))}, nil
			})

		stored, err := srv.Upload(context.Background(), testActor("adoption_manager"), " Adoption ", usecase.UploadInput{
			Filename: "rex.jpeg",
			Size:     int64(len(pngHeader)),
			Body:     bytes.NewReader(pngHeader),
		})

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^adoption/adoption_manager/2025/03/[0-9a-f-]{36}\.png$`), stored.Key)
		assert.Equal(t, pngHeader, written)
	})

	t.Run("pdf accepted", func(t *testing.T) {
		srv, storage := createTestUploadService(t, 0)

		storage.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, ".pdf") }), "application/pdf", mock.Anything).
			Return(&service.StoredFile{Key: "pharmacy/public_user/x.pdf"}, nil)

		_, err := srv.Upload(context.Background(), testActor("public_user"), "pharmacy", usecase.UploadInput{
			Body: strings.NewReader("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"),
		})

		require.NoError(t, err)
	})

	t.Run("text rejected", func(t *testing.T) {
		srv, _ := createTestUploadService(t, 0)

		_, err := srv.Upload(context.Background(), testActor("public_user"), "profile", usecase.UploadInput{
			Body: strings.NewReader("just some notes"),
		})

		require.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
	})

	t.Run("declared size over limit", func(t *testing.T) {
		srv, _ := createTestUploadService(t, 10)

		_, err := srv.Upload(context.Background(), testActor("public_user"), "profile", usecase.UploadInput{
			Size: 11,
			Body: bytes.NewReader(pngHeader),
		})

		require.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
		assert.Equal(t, 413, mustAppError(t, err).HTTPCode())
	})

	t.Run("stream over limit", func(t *testing.T) {
		srv, storage := createTestUploadService(t, 10)

		storage.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrFileTooLarge)

		_, err := srv.Upload(context.Background(), testActor("public_user"), "profile", usecase.UploadInput{
			Body: bytes.NewReader(pngHeader),
		})

		require.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	})

	t.Run("unknown folder", func(t *testing.T) {
		srv, _ := createTestUploadService(t, 0)

		_, err := srv.Upload(context.Background(), testActor("public_user"), "../etc", usecase.UploadInput{
			Body: bytes.NewReader(pngHeader),
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
