package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cakeshop/cakes-service/internal/cake"
)

// listProjection limits listings to the API fields; any other stored field
// (added by an unfiltered update) is excluded.
var listProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "name", Value: 1},
	{Key: "comment", Value: 1},
	{Key: "imageUrl", Value: 1},
	{Key: "yumFactor", Value: 1},
}

// MongoStore implements Store over a MongoDB collection. Cakes are stored
// with their UUID string as the native "_id" key, so no extra index is
// needed for lookups.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (m *MongoStore) Find(ctx context.Context) ([]cake.Document, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetProjection(listProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []cake.Document{}
	for cur.Next(ctx) {
		var d cake.Document
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, cur.Err()
}

func (m *MongoStore) FindOne(ctx context.Context, id string) (cake.Document, error) {
	var d cake.Document
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (m *MongoStore) InsertOne(ctx context.Context, doc cake.Document) error {
	_, err := m.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (m *MongoStore) DeleteOne(ctx context.Context, id string) (int64, error) {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoStore) FindOneAndReplace(ctx context.Context, id string, doc cake.Document) error {
	err := m.col.FindOneAndReplace(ctx, bson.M{"_id": id}, doc).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
