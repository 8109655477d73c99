// Package storage keeps uploaded and generated files in a gocloud blob bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/service"
)

type blobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
	maxSize      int64
	logger       *slog.Logger
}

// Params holds dependencies for the file storage
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens a fileblob bucket rooted at storage.root.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage

	bucket, err := fileblob.OpenBucket(cfg.Root, &fileblob.Options{CreateDir: true, NoTempDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open storage root %s", cfg.Root)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("File storage ready", slog.String("root", cfg.Root), slog.String("prefix", cfg.PublicPrefix))

	return NewBlobStorage(bucket, cfg.PublicPrefix, cfg.MaxUploadSize, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicPrefix string, maxSize int64, logger *slog.Logger) service.FileStorage {
	return &blobStorage{
		bucket:       bucket,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
		maxSize:      maxSize,
		logger:       logger,
	}
}

// Save streams r into key, computing a SHA-256 checksum on the way.
// Inputs longer than the configured max size are rejected and nothing is kept.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, r io.Reader) (*service.StoredFile, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "open writer %s", key)
	}

	hash := sha256.New()
	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	size, err := io.Copy(io.MultiWriter(w, hash), src)
	if err == nil && s.maxSize > 0 && size > s.maxSize {
		err = ErrTooLarge
	}
	if err != nil {
		// cancelling before Close discards the partial object
		cancel()
		_ = w.Close()

		return nil, errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "close %s", key)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("File stored",
		slog.String("key", key),
		slog.Int64("size", size),
	)

	return &service.StoredFile{
		Key:      key,
		URL:      s.URL(key),
		Size:     size,
		Checksum: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

func (s *blobStorage) Exists(ctx context.Context, key string) (bool, error) {
	key, err := cleanKey(key)
	if err != nil {
		return false, err
	}

	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", key)
	}

	return ok, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStorage) URL(key string) string {
	return s.publicPrefix + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL accepts URLs with or without scheme and host as long as the
// path starts with the public prefix.
func (s *blobStorage) KeyFromURL(url string) (string, bool) {
	p := url
	if idx := strings.Index(p, "://"); idx >= 0 {
		rest := p[idx+3:]
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			return "", false
		}
		p = rest[slash:]
	}
	if q := strings.IndexAny(p, "?#"); q >= 0 {
		p = p[:q]
	}

	if !strings.HasPrefix(p, s.publicPrefix+"/") {
		return "", false
	}

	key, err := cleanKey(strings.TrimPrefix(p, s.publicPrefix+"/"))
	if err != nil {
		return "", false
	}

	return key, true
}

// ErrTooLarge is returned by Save when the input exceeds the size limit.
var ErrTooLarge = service.ErrFileTooLarge

// ErrInvalidKey rejects empty keys and keys escaping the bucket root.
var ErrInvalidKey = errors.New("invalid storage key")

func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.WithStack(ErrInvalidKey)
	}
	if cleaned != strings.TrimPrefix(key, "/") {
		return "", errors.WithStack(ErrInvalidKey)
	}

	return cleaned, nil
}
