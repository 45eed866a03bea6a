package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultTimeout bounds a single repository call when none is configured.
const DefaultTimeout = 10 * time.Second

// collection wraps a mongo collection with the per-call timeout every query uses.
type collection struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newCollection(db *mongo.Database, name string, timeout time.Duration) collection {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return collection{coll: db.Collection(name), timeout: timeout}
}

func (c collection) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.timeout)
}

func findOne[T any](ctx context.Context, c collection, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	var out T
	if err := c.coll.FindOne(ctx, filter, opts...).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, c collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findPage runs the page query and the total count for the same filter.
func findPage[T any](ctx context.Context, c collection, filter interface{}, page models.PageQuery, sort bson.D) ([]T, int64, error) {
	opts := options.Find().SetSort(sort).SetSkip(page.Skip()).SetLimit(page.Limit)
	items, err := findMany[T](ctx, c, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := count(ctx, c, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func count(ctx context.Context, c collection, filter interface{}) (int64, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	return c.coll.CountDocuments(ctx, filter)
}

func exists(ctx context.Context, c collection, filter interface{}) (bool, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()
	n, err := c.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func insert(ctx context.Context, c collection, doc interface{}) (primitive.ObjectID, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, apperrors.FromMongo(err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// updateByID applies update and decodes the post-update document.
func updateByID[T any](ctx context.Context, c collection, id primitive.ObjectID, update interface{}) (*T, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out T
	if err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, apperrors.FromMongo(err)
	}
	return &out, nil
}

// setWithTimestamp wraps set in $set and stamps updatedAt.
func setWithTimestamp(set bson.M) bson.M {
	doc := bson.M{"updatedAt": time.Now()}
	for k, v := range set {
		doc[k] = v
	}
	return bson.M{"$set": doc}
}

func deleteByID(ctx context.Context, c collection, id primitive.ObjectID) error {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

func regexFilter(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}

func stamp(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// containsFilter matches text literally, case-insensitively.
func containsFilter(text string) bson.M {
	return regexFilter(regexp.QuoteMeta(text))
}
