package repository

import (
	"context"
	"errors"

	"storesvc/internal/store/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateCollection(ctx context.Context, cfg *model.CollectionConfig, schema *model.CollectionSchema) error {
	if cfg.Created.IsZero() {
		cfg.Timestamps = model.NewTimestamps()
	}

	res, err := r.Configs.InsertOne(ctx, cfg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cfg.ID = oid
	}

	schema.CollectionID = cfg.ID.Hex()
	schema.OrgID = cfg.OrgID
	schema.Token = cfg.Token
	if schema.Created.IsZero() {
		schema.Timestamps = model.NewTimestamps()
	}

	schemaRes, err := r.Schemas.InsertOne(ctx, schema)
	if err != nil {
		return err
	}
	if oid, ok := schemaRes.InsertedID.(primitive.ObjectID); ok {
		schema.ID = oid
	}
	return nil
}

func (r *MongoRepository) GetCollectionConfig(ctx context.Context, token string) (*model.CollectionConfig, error) {
	var cfg model.CollectionConfig
	err := r.Configs.FindOne(ctx, bson.M{"token": token}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *MongoRepository) GetCollectionSchema(ctx context.Context, collectionID string) (*model.CollectionSchema, error) {
	var schema model.CollectionSchema
	err := r.Schemas.FindOne(ctx, bson.M{"collection_id": collectionID}).Decode(&schema)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &schema, nil
}

func (r *MongoRepository) UpdateCollectionConfig(ctx context.Context, token string, update map[string]any) (bool, error) {
	return applyStampedUpdate(ctx, r.Configs, bson.M{"token": token}, update)
}

func (r *MongoRepository) UpdateCollectionSchema(ctx context.Context, collectionID string, update map[string]any) (bool, error) {
	return applyStampedUpdate(ctx, r.Schemas, bson.M{"collection_id": collectionID}, update)
}

func (r *MongoRepository) CreateCollectionSchema(ctx context.Context, schema *model.CollectionSchema) error {
	if schema.Created.IsZero() {
		schema.Timestamps = model.NewTimestamps()
	}
	res, err := r.Schemas.InsertOne(ctx, schema)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		schema.ID = oid
	}
	return nil
}
