package repositories

import (
	"context"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepository handles report persistence
type ReportRepository struct {
	reports collection
}

var _ ReportRepositoryInterface = (*ReportRepository)(nil)

func NewReportRepository(db *mongo.Database, timeout time.Duration) *ReportRepository {
	return &ReportRepository{reports: newCollection(db, models.ReportsCollection, timeout)}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	if report.Location.Coordinates != nil {
		report.Location.Geo = models.NewGeoPoint(*report.Location.Coordinates)
	}
	if report.Photos == nil {
		report.Photos = []string{}
	}
	if report.Videos == nil {
		report.Videos = []string{}
	}
	stamp(&report.CreatedAt, &report.UpdatedAt)
	_, err := insert(ctx, r.reports, report)
	return err
}

func (r *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	return findOne[models.Report](ctx, r.reports, bson.M{"_id": id})
}

func (r *ReportRepository) FindOwned(ctx context.Context, id, citizenID primitive.ObjectID) (*models.Report, error) {
	return findOne[models.Report](ctx, r.reports, bson.M{"_id": id, "citizenId": citizenID})
}

func (r *ReportRepository) FindDuplicate(ctx context.Context, q DuplicateQuery) (*models.Report, error) {
	var or []bson.M
	if q.Coordinates != nil {
		or = append(or, bson.M{
			"location.coordinates.lat": bson.M{"$gte": q.Coordinates.Lat - q.Tolerance, "$lte": q.Coordinates.Lat + q.Tolerance},
			"location.coordinates.lng": bson.M{"$gte": q.Coordinates.Lng - q.Tolerance, "$lte": q.Coordinates.Lng + q.Tolerance},
		})
	}
	if q.AddressPattern != "" {
		or = append(or, bson.M{"location.address": regexFilter(q.AddressPattern)})
	}
	if q.TitlePattern != "" {
		or = append(or, bson.M{"title": regexFilter(q.TitlePattern)})
	}
	if len(or) == 0 {
		return nil, apperrors.ErrDocumentNotFound
	}

	filter := bson.M{
		"citizenId": q.CitizenID,
		"category":  q.Category,
		"status":    bson.M{"$in": models.ActiveReportStatuses},
		"createdAt": bson.M{"$gte": q.Since},
		"$or":       or,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return findOne[models.Report](ctx, r.reports, filter, opts)
}

func (r *ReportRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Report, error) {
	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
		update["$set"] = set
	}
	set["updatedAt"] = time.Now()
	if coords, ok := set["location.coordinates"].(*models.Coordinates); ok && coords != nil {
		set["location.geo"] = models.NewGeoPoint(*coords)
	}
	return updateByID[models.Report](ctx, r.reports, id, update)
}

func (r *ReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.reports, id)
}

func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter, page models.PageQuery) ([]models.Report, int64, error) {
	query := reportQuery(filter)
	if filter.Sort != "priority" {
		return findPage[models.Report](ctx, r.reports, query, page, reportSort(filter.Sort))
	}

	items, err := r.listByPriority(ctx, query, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := count(ctx, r.reports, query)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// listByPriority orders by severity rank rather than by the stored string.
func (r *ReportRepository) listByPriority(ctx context.Context, query bson.M, page models.PageQuery) ([]models.Report, error) {
	ctx, cancel := r.reports.ctx(ctx)
	defer cancel()

	cursor, err := r.reports.coll.Aggregate(ctx, priorityPipeline(query, page))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.Report, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func priorityPipeline(query bson.M, page models.PageQuery) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: query}},
		{{Key: "$addFields", Value: bson.M{"priorityRank": priorityRank()}}},
		{{Key: "$sort", Value: bson.D{{Key: "priorityRank", Value: -1}, {Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit}},
		{{Key: "$unset", Value: "priorityRank"}},
	}
}

func priorityRank() bson.M {
	ranks := []struct {
		priority models.Priority
		rank     int
	}{
		{models.PriorityUrgent, 4},
		{models.PriorityHigh, 3},
		{models.PriorityMedium, 2},
		{models.PriorityLow, 1},
	}
	branches := make([]bson.M, 0, len(ranks))
	for _, r := range ranks {
		branches = append(branches, bson.M{"case": bson.M{"$eq": bson.A{"$priority", r.priority}}, "then": r.rank})
	}
	return bson.M{"$switch": bson.M{"branches": branches, "default": 0}}
}

func (r *ReportRepository) Count(ctx context.Context, filter models.ReportFilter, statuses ...models.ReportStatus) (int64, error) {
	query := reportQuery(filter)
	if len(statuses) > 0 {
		query["status"] = bson.M{"$in": statuses}
	}
	return count(ctx, r.reports, query)
}

func (r *ReportRepository) Nearby(ctx context.Context, center models.Coordinates, radiusMeters float64, limit int64, municipalityID *primitive.ObjectID) ([]models.Report, error) {
	query := bson.M{
		"location.geo": bson.M{
			"$nearSphere": bson.M{
				"$geometry":    models.NewGeoPoint(center),
				"$maxDistance": radiusMeters,
			},
		},
	}
	if municipalityID != nil {
		query["municipalityId"] = *municipalityID
	}
	return findMany[models.Report](ctx, r.reports, query, options.Find().SetLimit(limit))
}

// CountBy groups a municipality's reports by field and counts each group.
func (r *ReportRepository) CountBy(ctx context.Context, municipalityID primitive.ObjectID, field string) ([]models.CountByKey, error) {
	ctx, cancel := r.reports.ctx(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"municipalityId": municipalityID}}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := r.reports.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.CountByKey, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func reportQuery(f models.ReportFilter) bson.M {
	query := bson.M{}
	if f.MunicipalityID != nil {
		query["municipalityId"] = *f.MunicipalityID
	}
	if f.CitizenID != nil {
		query["citizenId"] = *f.CitizenID
	}
	if f.AssignedStaffID != nil {
		query["assignedStaffId"] = *f.AssignedStaffID
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Severity != "" {
		query["severity"] = f.Severity
	}
	if f.Priority != "" {
		query["priority"] = f.Priority
	}
	if f.From != nil || f.To != nil {
		created := bson.M{}
		if f.From != nil {
			created["$gte"] = *f.From
		}
		// To is a calendar day and includes the whole of it
		if f.To != nil {
			created["$lt"] = f.To.AddDate(0, 0, 1)
		}
		query["createdAt"] = created
	}
	if f.Search != "" {
		query["$or"] = []bson.M{
			{"title": containsFilter(f.Search)},
			{"description": containsFilter(f.Search)},
			{"location.address": containsFilter(f.Search)},
		}
	}
	return query
}

func reportSort(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "createdAt", Value: 1}}
	case "dueDate":
		return bson.D{{Key: "dueDate", Value: 1}, {Key: "createdAt", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
