package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"
	"petwelfare/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sniffLen is how much of the upload is read to detect its type.
const sniffLen = 3072

// profileUploads holds avatars and other account files.
const profileUploads = "profile"

type uploadService struct {
	storage service.FileStorage
	maxSize int64
	now     func() time.Time
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.FileStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	var maxSize int64
	if params.Config.Storage != nil {
		maxSize = params.Config.Storage.MaxUploadSize
	}

	return &uploadService{
		storage: params.Storage,
		maxSize: maxSize,
		now:     time.Now,
		logger:  params.Logger,
	}
}

// UploadFolders are the first key segment accepted by Upload.
func UploadFolders() []string {
	folders := []string{profileUploads, string(entity.ModuleCore)}
	for _, m := range entity.ServiceModules {
		folders = append(folders, string(m))
	}

	return folders
}

// Upload sniffs the content, accepting images and PDFs, and writes it to
// <module>/<role>/<yyyy>/<mm>/<uuid><ext>.
func (srv *uploadService) Upload(ctx context.Context, actor *usecase.Actor, module string, input usecase.UploadInput) (*service.StoredFile, error) {
	module = strings.ToLower(strings.TrimSpace(module))
	if !slices.Contains(UploadFolders(), module) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("uploads are not accepted for " + module)
	}
	if input.Body == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}
	if srv.maxSize > 0 && input.Size > srv.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxSize))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(input.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]
	if n == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	detected := mimetype.Detect(head)
	if !isAllowedUpload(detected) {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails(detected.String())
	}

	ext := detected.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(input.Filename))
	}
	now := srv.now().UTC()
	key := strings.Join([]string{
		module,
		roleFolder(actor),
		now.Format("2006"),
		now.Format("01"),
		uuid.NewString() + ext,
	}, "/")

	stored, err := srv.storage.Save(ctx, key, detected.String(), io.MultiReader(bytes.NewReader(head), input.Body))
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) {
			return nil, domainerrors.ErrFileTooLarge
		}

		return nil, errors.Wrap(err, "failed to store upload")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Upload stored",
		slog.String("key", stored.Key),
		slog.String("contentType", detected.String()),
		slog.Int64("size", stored.Size),
	)

	return stored, nil
}

func isAllowedUpload(detected *mimetype.MIME) bool {
	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") || m.Is("application/pdf") {
			return true
		}
	}

	return false
}

func roleFolder(actor *usecase.Actor) string {
	if actor == nil || actor.Role == "" {
		return entity.RolePublicUser
	}

	return actor.Role
}
