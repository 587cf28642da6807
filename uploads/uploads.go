package uploads

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-book-crud/env"
	serverError "github.com/supakorn-kn/go-book-crud/errors"
	"github.com/supakorn-kn/go-book-crud/logging"
	"go.uber.org/zap"
)

const (
	pathContextKeyPrefix = "upload."

	// formOverhead leaves room for the text fields and multipart boundaries next to the file.
	formOverhead int64 = 1 << 20
)

// Uploader saves single image files from multipart requests into a local directory.
// Saved files only live for the request that brought them.
type Uploader struct {
	dir          string
	maxSize      int64
	formOverhead int64
	now          func() time.Time
}

// New creates the upload directory when it does not exist yet.
func New(config env.UploadsConfig, logger *zap.Logger) (*Uploader, error) {

	if _, err := os.Stat(config.Dir); errors.Is(err, fs.ErrNotExist) {

		if err := os.MkdirAll(config.Dir, 0o755); err != nil {
			return nil, err
		}

		logger.Info("upload directory created", zap.String("dir", config.Dir))
	}

	return &Uploader{
		dir:          config.Dir,
		maxSize:      config.MaxSize,
		formOverhead: formOverhead,
		now:          time.Now,
	}, nil
}

// Single stores the file of the given form field, if any, before the next handlers run.
// Rejected files abort the request with 400. Whatever is left on disk is removed
// once the request is done.
func (u *Uploader) Single(field string) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		path, err := u.save(ctx, field)
		if err != nil {

			if asserted, ok := serverError.TryAssertError(err); ok {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": asserted.Message})
				return
			}

			logging.FromContext(ctx).Error("saving uploaded file failed", zap.String("field", field), zap.Error(err))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if path == "" {
			ctx.Next()
			return
		}

		ctx.Set(pathContextKeyPrefix+field, path)
		defer u.cleanup(ctx, path)

		ctx.Next()
	}
}

// Path returns where the file of field was saved, or "" when none was sent.
func Path(ctx *gin.Context, field string) string {
	return ctx.GetString(pathContextKeyPrefix + field)
}

func (u *Uploader) save(ctx *gin.Context, field string) (string, error) {

	limit := u.maxSize + u.formOverhead
	if ctx.Request.ContentLength > limit {
		return "", u.tooLargeError()
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)

	fileHeader, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "", u.tooLargeError()
	}

	if err != nil {
		return "", err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", serverError.InvalidFileError.New("Invalid file format: Images Only")
	}

	if fileHeader.Size > u.maxSize {
		return "", u.tooLargeError()
	}

	path := filepath.Join(u.dir, u.fileName(mimeType))
	if err := ctx.SaveUploadedFile(fileHeader, path); err != nil {
		return "", err
	}

	return path, nil
}

func (u *Uploader) tooLargeError() error {
	return serverError.InvalidFileError.New(fmt.Sprintf("File too large: maximum size is %d bytes", u.maxSize))
}

// fileName follows IMG_{unix millis}_{random}.{mime subtype}.
func (u *Uploader) fileName(mimeType string) string {

	subtype := strings.TrimPrefix(mimeType, "image/")
	if i := strings.IndexByte(subtype, ';'); i >= 0 {
		subtype = subtype[:i]
	}

	random := int64(math.Round(rand.Float64() * 1e9))

	return fmt.Sprintf("IMG_%d_%d.%s", u.now().UnixMilli(), random, strings.TrimSpace(subtype))
}

func (u *Uploader) cleanup(ctx *gin.Context, path string) {

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.FromContext(ctx).Warn("removing uploaded file failed", zap.String("path", path), zap.Error(err))
	}
}
