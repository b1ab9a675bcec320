package storage

import (
	"fmt"

	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/minio/minio-go/v7"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return port.ErrObjectNotFound
	case "NoSuchBucket":
		return port.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return port.ErrUnauthorized
	default:
		// catch everything else, keeping the cause in the chain so callers
		// can still match context/timeout errors with errors.Is
		return fmt.Errorf("%w: %w", port.ErrInternal, err)
	}
}
