package repositories

import (
	"context"
	"strings"
	"time"

	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository handles staff record persistence
type StaffRepository struct {
	staffs collection
}

var _ StaffRepositoryInterface = (*StaffRepository)(nil)

func NewStaffRepository(db *mongo.Database, timeout time.Duration) *StaffRepository {
	return &StaffRepository{staffs: newCollection(db, models.StaffsCollection, timeout)}
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	if staff.ID.IsZero() {
		staff.ID = primitive.NewObjectID()
	}
	staff.EmployeeID = strings.ToUpper(staff.EmployeeID)
	if staff.JoinDate.IsZero() {
		staff.JoinDate = time.Now()
	}
	stamp(&staff.CreatedAt, &staff.UpdatedAt)
	_, err := insert(ctx, r.staffs, staff)
	return err
}

func (r *StaffRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error) {
	return findOne[models.Staff](ctx, r.staffs, bson.M{"_id": id})
}

func (r *StaffRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Staff, error) {
	return findOne[models.Staff](ctx, r.staffs, bson.M{"userId": userID})
}

func (r *StaffRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return exists(ctx, r.staffs, bson.M{"employeeId": strings.ToUpper(employeeID)})
}

func (r *StaffRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Staff, error) {
	return updateByID[models.Staff](ctx, r.staffs, id, setWithTimestamp(set))
}

func (r *StaffRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.staffs, id)
}

// List joins each staff record with its user so listings carry names.
func (r *StaffRepository) List(ctx context.Context, filter models.StaffFilter, page models.PageQuery) ([]models.StaffWithUser, int64, error) {
	match := bson.M{}
	if filter.MunicipalityID != nil {
		match["municipalityId"] = *filter.MunicipalityID
	}
	if filter.Department != "" {
		match["department"] = filter.Department
	}
	if filter.Availability != nil {
		match["availability"] = *filter.Availability
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}

	total, err := count(ctx, r.staffs, match)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := r.staffs.ctx(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: page.Limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         models.UsersCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
	}
	cursor, err := r.staffs.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	out := make([]models.StaffWithUser, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *StaffRepository) IncrementCounters(ctx context.Context, userID primitive.ObjectID, inc bson.M) error {
	ctx, cancel := r.staffs.ctx(ctx)
	defer cancel()

	_, err := r.staffs.coll.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{
		"$inc": inc,
		"$set": bson.M{"updatedAt": time.Now()},
	})
	return err
}
