package media

import "errors"

var (
	ErrAssetNotFound      = errors.New("media: asset not found")
	ErrDuplicateSourceKey = errors.New("media: source key already registered")
)
