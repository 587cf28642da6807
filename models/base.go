package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by BaseModel when no document matches.
var ErrNotFound = errors.New("document not found")

// BaseModel holds the collection operations shared by every model keyed by a Mongo ObjectID.
type BaseModel[T any] struct {
	Coll *mongo.Collection
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection) error {

	if coll == nil {
		return errors.New("collection must not be nil")
	}

	m.Coll = coll

	return nil
}

// ParseID converts a hex id. Malformed ids are reported as ErrNotFound since no
// document can ever carry them.
func ParseID(itemID string) (primitive.ObjectID, error) {

	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}

	return objectID, nil
}

func (m BaseModel[T]) Insert(ctx context.Context, item T) (primitive.ObjectID, error) {

	result, err := m.Coll.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted document has no ObjectID")
	}

	return insertedID, nil
}

func (m BaseModel[T]) GetByID(ctx context.Context, itemID string) (item T, err error) {

	objectID, err := ParseID(itemID)
	if err != nil {
		return
	}

	return m.FindOne(ctx, EqualMatchBson("_id", objectID))
}

func (m BaseModel[T]) FindOne(ctx context.Context, filter bson.D, opts ...*options.FindOneOptions) (item T, err error) {

	err = m.Coll.FindOne(ctx, filter, opts...).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNotFound
	}

	return
}

func (m BaseModel[T]) Find(ctx context.Context, filter bson.D) ([]T, error) {

	cur, err := m.Coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateByID applies update and returns the document as it is after the update.
func (m BaseModel[T]) UpdateByID(ctx context.Context, itemID string, update bson.D) (item T, err error) {

	objectID, err := ParseID(itemID)
	if err != nil {
		return
	}

	option := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := m.Coll.FindOneAndUpdate(ctx, EqualMatchBson("_id", objectID), update, option)

	err = result.Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNotFound
	}

	return
}

// DeleteByID reports whether a document was actually removed.
func (m BaseModel[T]) DeleteByID(ctx context.Context, itemID string) (bool, error) {

	objectID, err := ParseID(itemID)
	if err != nil {
		return false, nil
	}

	result, err := m.Coll.DeleteOne(ctx, EqualMatchBson("_id", objectID))
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
