package repositories

import (
	"context"
	"regexp"
	"time"

	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MunicipalityRepository handles municipality persistence
type MunicipalityRepository struct {
	municipalities collection
}

var _ MunicipalityRepositoryInterface = (*MunicipalityRepository)(nil)

func NewMunicipalityRepository(db *mongo.Database, timeout time.Duration) *MunicipalityRepository {
	return &MunicipalityRepository{municipalities: newCollection(db, models.MunicipalitiesCollection, timeout)}
}

func (r *MunicipalityRepository) Create(ctx context.Context, m *models.Municipality) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	stamp(&m.CreatedAt, &m.UpdatedAt)
	_, err := insert(ctx, r.municipalities, m)
	return err
}

func (r *MunicipalityRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Municipality, error) {
	return findOne[models.Municipality](ctx, r.municipalities, bson.M{"_id": id})
}

func (r *MunicipalityRepository) ExistsByNameAndCity(ctx context.Context, name, city string) (bool, error) {
	return exists(ctx, r.municipalities, bson.M{
		"name":          regexFilter("^" + regexp.QuoteMeta(name) + "$"),
		"location.city": regexFilter("^" + regexp.QuoteMeta(city) + "$"),
	})
}

func (r *MunicipalityRepository) List(ctx context.Context, filter models.MunicipalityFilter, page models.PageQuery) ([]models.Municipality, int64, error) {
	query := bson.M{"isActive": true}
	if filter.City != "" {
		query["location.city"] = containsFilter(filter.City)
	}
	if filter.Province != "" {
		query["location.province"] = containsFilter(filter.Province)
	}
	if filter.Search != "" {
		query["$or"] = []bson.M{
			{"name": containsFilter(filter.Search)},
			{"location.city": containsFilter(filter.Search)},
		}
	}
	return findPage[models.Municipality](ctx, r.municipalities, query, page, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MunicipalityRepository) ListSummaries(ctx context.Context) ([]models.MunicipalitySummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetProjection(bson.M{"name": 1, "city": "$location.city", "province": "$location.province"})
	return findMany[models.MunicipalitySummary](ctx, r.municipalities, bson.M{"isActive": true}, opts)
}

func (r *MunicipalityRepository) SearchByLocation(ctx context.Context, city, province string) ([]models.Municipality, error) {
	query := bson.M{"isActive": true}
	if city != "" {
		query["location.city"] = containsFilter(city)
	}
	if province != "" {
		query["location.province"] = containsFilter(province)
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findMany[models.Municipality](ctx, r.municipalities, query, opts)
}

func (r *MunicipalityRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Municipality, error) {
	return updateByID[models.Municipality](ctx, r.municipalities, id, setWithTimestamp(set))
}

func (r *MunicipalityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.municipalities, id)
}
