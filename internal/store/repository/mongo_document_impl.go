package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) InsertDocument(ctx context.Context, dataCollection string, doc bson.M) error {
	_, err := r.data(dataCollection).InsertOne(ctx, doc)
	return err
}

func (r *MongoRepository) GetDocument(ctx context.Context, dataCollection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := r.data(dataCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *MongoRepository) UpdateDocument(ctx context.Context, dataCollection string, filter bson.M, update map[string]any) (bool, error) {
	res, err := r.data(dataCollection).UpdateOne(ctx, filter, bson.M{"$set": stampModified(update)})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) DeleteDocument(ctx context.Context, dataCollection string, filter bson.M) (bool, error) {
	res, err := r.data(dataCollection).DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) FindDocuments(ctx context.Context, dataCollection string, filter bson.M, limit, skip int64) ([]bson.M, int64, error) {
	coll := r.data(dataCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}
