package usecase

import (
	"context"
	"io"

	"bookclub/internal/domain/service"
)

// UploadUsecase stores user-supplied images.
type UploadUsecase interface {
	// UploadImage sniffs the content type and rejects anything that is not an image.
	UploadImage(ctx context.Context, actorID, fileName string, body io.Reader) (*service.StoredFile, error)
}
