package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Configs *mongo.Collection
	Schemas *mongo.Collection
	DB      *mongo.Database
}

func NewMongoRepository(db *mongo.Database, configsCollection, schemasCollection string) *MongoRepository {
	return &MongoRepository{
		Configs: db.Collection(configsCollection),
		Schemas: db.Collection(schemasCollection),
		DB:      db,
	}
}

// data resolves the per-collection document store by name.
func (r *MongoRepository) data(name string) *mongo.Collection {
	return r.DB.Collection(name)
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	idxConfigToken := mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_config_token"),
	}
	if _, err := r.Configs.Indexes().CreateMany(ctx, []mongo.IndexModel{idxConfigToken}); err != nil {
		return err
	}

	idxSchemaCollection := mongo.IndexModel{
		Keys:    bson.D{{Key: "collection_id", Value: 1}},
		Options: options.Index().SetName("idx_schema_collection_id"),
	}
	idxSchemaToken := mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetName("idx_schema_token"),
	}
	_, err := r.Schemas.Indexes().CreateMany(ctx, []mongo.IndexModel{idxSchemaCollection, idxSchemaToken})
	return err
}
