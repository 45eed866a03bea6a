package repositories

import (
	"context"
	"time"

	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the persistence operations on users
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update applies set with $set and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int) error
}

// MunicipalityRepositoryInterface defines the persistence operations on municipalities
type MunicipalityRepositoryInterface interface {
	Create(ctx context.Context, m *models.Municipality) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Municipality, error)
	ExistsByNameAndCity(ctx context.Context, name, city string) (bool, error)
	// List returns active municipalities only.
	List(ctx context.Context, filter models.MunicipalityFilter, page models.PageQuery) ([]models.Municipality, int64, error)
	ListSummaries(ctx context.Context) ([]models.MunicipalitySummary, error)
	SearchByLocation(ctx context.Context, city, province string) ([]models.Municipality, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Municipality, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DuplicateQuery describes the open reports a new submission may duplicate.
type DuplicateQuery struct {
	CitizenID      primitive.ObjectID
	Category       models.ReportCategory
	Since          time.Time
	Coordinates    *models.Coordinates
	Tolerance      float64
	AddressPattern string
	TitlePattern   string
}

// ReportRepositoryInterface defines the persistence operations on reports
type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	FindOwned(ctx context.Context, id, citizenID primitive.ObjectID) (*models.Report, error)
	// FindDuplicate returns the oldest matching open report, or ErrDocumentNotFound.
	FindDuplicate(ctx context.Context, q DuplicateQuery) (*models.Report, error)
	// Update applies an operator document ($set, $push, ...) and returns the result.
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Report, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter models.ReportFilter, page models.PageQuery) ([]models.Report, int64, error)
	Count(ctx context.Context, filter models.ReportFilter, statuses ...models.ReportStatus) (int64, error)
	Nearby(ctx context.Context, center models.Coordinates, radiusMeters float64, limit int64, municipalityID *primitive.ObjectID) ([]models.Report, error)
	CountBy(ctx context.Context, municipalityID primitive.ObjectID, field string) ([]models.CountByKey, error)
}

// StaffRepositoryInterface defines the persistence operations on staff records
type StaffRepositoryInterface interface {
	Create(ctx context.Context, staff *models.Staff) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Staff, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Staff, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter models.StaffFilter, page models.PageQuery) ([]models.StaffWithUser, int64, error)
	// IncrementCounters applies $inc to the staff record owned by userID.
	IncrementCounters(ctx context.Context, userID primitive.ObjectID, inc bson.M) error
}

// SponsorRepositoryInterface defines the persistence operations on sponsors
type SponsorRepositoryInterface interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error)
	ExistsByContactEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Sponsor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter models.SponsorFilter, page models.PageQuery) ([]models.Sponsor, int64, error)
	// FindVisible returns active in-window sponsors: global ones, plus the
	// municipality's own when municipalityID is set.
	FindVisible(ctx context.Context, municipalityID *primitive.ObjectID, now time.Time) ([]models.Sponsor, error)
}

// EmergencyServiceRepositoryInterface defines the persistence operations on the emergency directory
type EmergencyServiceRepositoryInterface interface {
	Create(ctx context.Context, service *models.EmergencyService) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmergencyService, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.EmergencyService, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter models.EmergencyServiceFilter, page models.PageQuery) ([]models.EmergencyService, int64, error)
	// ListForMunicipality returns the active services of a municipality plus nationwide ones.
	ListForMunicipality(ctx context.Context, municipalityID primitive.ObjectID) ([]models.EmergencyService, error)
}
