package storage

import "context"

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the minimal S3-compatible operations the export
// pipeline needs.
type ObjectStorage interface {
	UploadFile(ctx context.Context, key string, localPath string) error
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
