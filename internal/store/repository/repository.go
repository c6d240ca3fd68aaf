package repository

import (
	"context"
	"errors"

	"storesvc/internal/store/model"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type CollectionRepository interface {
	// Persist a new config plus its schema document
	CreateCollection(ctx context.Context, cfg *model.CollectionConfig, schema *model.CollectionSchema) error
	// Lookup config by token
	GetCollectionConfig(ctx context.Context, token string) (*model.CollectionConfig, error)
	// Lookup schema by config document id
	GetCollectionSchema(ctx context.Context, collectionID string) (*model.CollectionSchema, error)
	// Partial config update, stamped with a fresh modified timestamp
	UpdateCollectionConfig(ctx context.Context, token string, update map[string]any) (bool, error)
	// Partial schema update, stamped with a fresh modified timestamp
	UpdateCollectionSchema(ctx context.Context, collectionID string, update map[string]any) (bool, error)
	// Persist a schema document on its own (late schema registration)
	CreateCollectionSchema(ctx context.Context, schema *model.CollectionSchema) error
	// Initialize indexes on the registry collections
	EnsureIndexes(ctx context.Context) error
}

type DocumentRepository interface {
	InsertDocument(ctx context.Context, dataCollection string, doc bson.M) error
	GetDocument(ctx context.Context, dataCollection string, filter bson.M) (bson.M, error)
	// Reports whether a document matched; zero matches is a failed update here,
	// unlike the stamped config/schema helper
	UpdateDocument(ctx context.Context, dataCollection string, filter bson.M, update map[string]any) (bool, error)
	DeleteDocument(ctx context.Context, dataCollection string, filter bson.M) (bool, error)
	FindDocuments(ctx context.Context, dataCollection string, filter bson.M, limit, skip int64) ([]bson.M, int64, error)
}
