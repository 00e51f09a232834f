package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tushar3330/Mytube/internal/apperrors"
	"github.com/Tushar3330/Mytube/internal/core/domain"
	"github.com/Tushar3330/Mytube/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadStager writes multipart files to a local temp directory before they are
// handed to object storage.
type uploadStager struct {
	dir      string
	maxBytes int64
}

// formOverheadBytes covers the text fields and part headers around the files.
const formOverheadBytes = 1 << 20

func noCleanup() {}

// limitBody caps the request body at files*maxBytes plus form overhead, so an
// oversized form fails while it is being read instead of after it is buffered.
// It must run before anything parses the form.
func (u uploadStager) limitBody(c *gin.Context, files int64) {
	if u.maxBytes <= 0 || c.Request.Body == nil {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, files*u.maxBytes+formOverheadBytes)
}

// tooLarge reports whether err came from a body cut off by limitBody.
func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func bodyTooLargeError(err error) *apperrors.AppError {
	return apperrors.BadRequest("Request body is too large", errors.Join(apperrors.ErrValidation, err))
}

// stage saves the form file named field. A missing field yields (nil, noCleanup, nil).
// The returned cleanup removes the staged copy and must always be called.
func (u uploadStager) stage(c *gin.Context, field string) (*domain.UploadedFile, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noCleanup, nil
		}
		if tooLarge(err) {
			return nil, noCleanup, bodyTooLargeError(err)
		}
		return nil, noCleanup, apperrors.BadRequest("Invalid multipart form", err)
	}
	if header.Size == 0 {
		return nil, noCleanup, nil
	}
	if u.maxBytes > 0 && header.Size > u.maxBytes {
		return nil, noCleanup, apperrors.BadRequest(fmt.Sprintf("%s file is too large", field), apperrors.ErrValidation)
	}

	if err := os.MkdirAll(u.dir, 0o750); err != nil {
		return nil, noCleanup, apperrors.Internal("Failed to stage upload", err)
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(header.Filename)))
	dst := filepath.Join(u.dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(header, dst); err != nil {
		return nil, noCleanup, apperrors.Internal("Failed to stage upload", err)
	}

	cleanup := func() {
		if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to remove staged upload",
				slog.String("path", dst), slog.String("error", err.Error()))
		}
	}

	return &domain.UploadedFile{
		Path:        dst,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, cleanup, nil
}
