package services

import (
	"context"
	"time"

	"nagaralert-be/models"
	"nagaralert-be/storage"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/client_mocks.go -package=mocks

// MediaStorage persists uploaded files and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, path, folder string, kind models.MediaKind) (*storage.UploadResult, error)
	Delete(ctx context.Context, publicID string, kind models.MediaKind) error
}

// Mailer delivers a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// GPSExtractor reads the GPS fix embedded in a photo.
type GPSExtractor interface {
	ExtractGPS(path string) (models.Coordinates, bool, error)
}

// Cache stores JSON values with a TTL.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SubmissionRecorder counts report submission outcomes.
type SubmissionRecorder interface {
	ReportSubmitted(outcome string)
}
