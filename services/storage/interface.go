package storage

import "context"

// StorageService defines the interface for listing image storage.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns the permanent public URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile deletes a file given its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
