package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// Field names accepted by [BookmarkValidator].
const (
	FieldURL   = "url"
	FieldTitle = "title"
	FieldTags  = "tags"
)

type BookmarkValidator struct {
}

func NewBookmarkValidator() Validator {
	return &BookmarkValidator{}
}

func (v *BookmarkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewBookmark:
		return v.validateNewBookmark(ctx, value, fields...)
	case *models.NewBookmark:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNewBookmark(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookmarkValidator) validateNewBookmark(_ context.Context, b models.NewBookmark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if err := ValidateURL(b.URL); err != nil {
				return err
			}
		case FieldTitle:
			if strings.TrimSpace(b.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldTags:
			for _, tag := range b.Tags {
				if strings.IndexFunc(tag, unicode.IsSpace) >= 0 {
					return ErrInvalidTag
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateURL accepts absolute http and https addresses with a host.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}

	return nil
}
