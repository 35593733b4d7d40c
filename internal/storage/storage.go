package storage

import (
	"context"
	"io"
)

// Storage is an interface for uploading files.
type Storage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader) error
}
