package ports

import (
	"context"

	"github.com/Tushar3330/Mytube/internal/core/domain"
)

// AssetStorage pushes staged files to object storage.
type AssetStorage interface {
	// Upload stores file under folder and returns its public URL.
	Upload(ctx context.Context, folder domain.AssetFolder, file domain.UploadedFile) (string, error)
}
