package contracts

import (
	"context"
	"io"
	"time"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName, contentType string, size int64, reader io.Reader) error
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
