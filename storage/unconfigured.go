package storage

import (
	"context"
	"errors"

	"nagaralert-be/models"
)

// ErrNotConfigured is returned by uploads when no media backend is set.
var ErrNotConfigured = errors.New("media storage is not configured")

// Unconfigured stands in for Cloudinary in local setups without credentials.
// Uploads fail; deletes are no-ops.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, string, string, models.MediaKind) (*UploadResult, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Delete(context.Context, string, models.MediaKind) error {
	return nil
}
