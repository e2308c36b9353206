package handler

import (
	"log/slog"
	"net/http"

	"bookclub/internal/delivery/api/middleware"
	"bookclub/internal/delivery/api/response"
	"bookclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const uploadFormField = "file"

// UploadHandler accepts images for topic covers and avatars.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

// UploadImage handles a multipart upload in the "file" field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.BindingError(c, "A multipart \"file\" field is required")
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	stored, err := h.uc.UploadImage(c.Request().Context(), middleware.GetUserID(c), header.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, stored)
}
