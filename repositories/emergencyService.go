package repositories

import (
	"context"
	"time"

	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmergencyServiceRepository handles the emergency directory
type EmergencyServiceRepository struct {
	services collection
}

var _ EmergencyServiceRepositoryInterface = (*EmergencyServiceRepository)(nil)

func NewEmergencyServiceRepository(db *mongo.Database, timeout time.Duration) *EmergencyServiceRepository {
	return &EmergencyServiceRepository{services: newCollection(db, models.EmergencyServicesCollection, timeout)}
}

func (r *EmergencyServiceRepository) Create(ctx context.Context, service *models.EmergencyService) error {
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	stamp(&service.CreatedAt, &service.UpdatedAt)
	_, err := insert(ctx, r.services, service)
	return err
}

func (r *EmergencyServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmergencyService, error) {
	return findOne[models.EmergencyService](ctx, r.services, bson.M{"_id": id})
}

func (r *EmergencyServiceRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.EmergencyService, error) {
	return updateByID[models.EmergencyService](ctx, r.services, id, setWithTimestamp(set))
}

func (r *EmergencyServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.services, id)
}

func (r *EmergencyServiceRepository) List(ctx context.Context, filter models.EmergencyServiceFilter, page models.PageQuery) ([]models.EmergencyService, int64, error) {
	query := bson.M{}
	if filter.MunicipalityID != nil {
		query["municipalityId"] = *filter.MunicipalityID
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	if filter.Search != "" {
		query["$or"] = []bson.M{
			{"name": containsFilter(filter.Search)},
			{"description": containsFilter(filter.Search)},
			{"location.city": containsFilter(filter.Search)},
		}
	}
	return findPage[models.EmergencyService](ctx, r.services, query, page, bson.D{{Key: "name", Value: 1}})
}

func (r *EmergencyServiceRepository) ListForMunicipality(ctx context.Context, municipalityID primitive.ObjectID) ([]models.EmergencyService, error) {
	query := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"municipalityId": municipalityID},
			{"municipalityId": nil},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	return findMany[models.EmergencyService](ctx, r.services, query, opts)
}
