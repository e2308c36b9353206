package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bookclub/config"
	deliverycontext "bookclub/internal/delivery/context"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"
	"bookclub/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage service.FileStorage
	prefix  string
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
	return &uploadService{
		storage: params.Storage,
		prefix:  strings.Trim(params.Config.Blob.Prefix, "/"),
		maxSize: params.Config.Blob.MaxSize,
		now:     time.Now,
		logger:  params.Logger,
	}
}

// UploadImage stores body as <prefix>/<name>_<unixMillis><ext>.
func (srv *uploadService) UploadImage(ctx context.Context, actorID, fileName string, body io.Reader) (*service.StoredFile, error) {
	if actorID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	content, err := io.ReadAll(io.LimitReader(body, srv.maxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(content)) > srv.maxSize {
		return nil, errors.WithStack(domainerrors.ErrUploadTooLarge.WithDetails("maximum size is " + util.FormatBytes(srv.maxSize)))
	}
	if len(content) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty upload")
	}

	mtype := mimetype.Detect(content)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedMedia.WithDetails(mtype.String()))
	}

	checksum, err := util.Checksum(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	key := srv.objectKey(fileName, mtype.Extension())
	stored, err := srv.storage.Put(ctx, key, mtype.String(), bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}
	stored.Checksum = checksum

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).InfoContext(ctx, "Image uploaded",
		slog.String("userID", actorID),
		slog.String("key", stored.Key),
		slog.String("size", util.FormatBytes(stored.Size)),
	)

	return stored, nil
}

func (srv *uploadService) objectKey(fileName, ext string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Trim(unsafeKeyChars.ReplaceAllString(base, "-"), "-")
	if base == "" {
		base = "image"
	}

	name := base + "_" + strconv.FormatInt(srv.now().UnixMilli(), 10) + ext
	if srv.prefix == "" {
		return name
	}

	return srv.prefix + "/" + name
}
