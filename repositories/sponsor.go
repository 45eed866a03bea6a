package repositories

import (
	"context"
	"strings"
	"time"

	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SponsorRepository handles sponsor persistence
type SponsorRepository struct {
	sponsors collection
}

var _ SponsorRepositoryInterface = (*SponsorRepository)(nil)

func NewSponsorRepository(db *mongo.Database, timeout time.Duration) *SponsorRepository {
	return &SponsorRepository{sponsors: newCollection(db, models.SponsorsCollection, timeout)}
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	if sponsor.ID.IsZero() {
		sponsor.ID = primitive.NewObjectID()
	}
	sponsor.ContactEmail = strings.ToLower(strings.TrimSpace(sponsor.ContactEmail))
	stamp(&sponsor.CreatedAt, &sponsor.UpdatedAt)
	_, err := insert(ctx, r.sponsors, sponsor)
	return err
}

func (r *SponsorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error) {
	return findOne[models.Sponsor](ctx, r.sponsors, bson.M{"_id": id})
}

func (r *SponsorRepository) ExistsByContactEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.sponsors, bson.M{"contactEmail": strings.ToLower(strings.TrimSpace(email))})
}

func (r *SponsorRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Sponsor, error) {
	return updateByID[models.Sponsor](ctx, r.sponsors, id, setWithTimestamp(set))
}

func (r *SponsorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.sponsors, id)
}

func (r *SponsorRepository) List(ctx context.Context, filter models.SponsorFilter, page models.PageQuery) ([]models.Sponsor, int64, error) {
	query := bson.M{}
	if filter.SponsorType != "" {
		query["sponsorType"] = filter.SponsorType
	}
	if filter.Scope != "" {
		query["scope"] = filter.Scope
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return findPage[models.Sponsor](ctx, r.sponsors, query, page, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *SponsorRepository) FindVisible(ctx context.Context, municipalityID *primitive.ObjectID, now time.Time) ([]models.Sponsor, error) {
	scopes := []bson.M{{"scope": models.ScopeGlobal}}
	if municipalityID != nil {
		scopes = append(scopes, bson.M{"scope": models.ScopeMunicipality, "municipalityId": *municipalityID})
	}
	query := bson.M{
		"status":    models.SponsorActive,
		"startDate": bson.M{"$lte": now},
		"endDate":   bson.M{"$gte": now},
		"$or":       scopes,
	}
	return findMany[models.Sponsor](ctx, r.sponsors, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}
