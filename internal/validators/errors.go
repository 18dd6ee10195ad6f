package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyURL   = errors.New("url is required")
	ErrInvalidURL = errors.New("url must be an absolute http(s) address")
	ErrEmptyTitle = errors.New("title is required")
	ErrInvalidTag = errors.New("tags cannot contain whitespace")
)
