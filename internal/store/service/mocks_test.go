package service

import (
	"context"

	"storesvc/internal/store/events"
	"storesvc/internal/store/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockCollectionRepository is a testify mock of repository.CollectionRepository.
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) CreateCollection(ctx context.Context, cfg *model.CollectionConfig, schema *model.CollectionSchema) error {
	args := m.Called(ctx, cfg, schema)
	return args.Error(0)
}

func (m *MockCollectionRepository) GetCollectionConfig(ctx context.Context, token string) (*model.CollectionConfig, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CollectionConfig), args.Error(1)
}

func (m *MockCollectionRepository) GetCollectionSchema(ctx context.Context, collectionID string) (*model.CollectionSchema, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CollectionSchema), args.Error(1)
}

func (m *MockCollectionRepository) UpdateCollectionConfig(ctx context.Context, token string, update map[string]any) (bool, error) {
	args := m.Called(ctx, token, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionRepository) UpdateCollectionSchema(ctx context.Context, collectionID string, update map[string]any) (bool, error) {
	args := m.Called(ctx, collectionID, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionRepository) CreateCollectionSchema(ctx context.Context, schema *model.CollectionSchema) error {
	args := m.Called(ctx, schema)
	return args.Error(0)
}

func (m *MockCollectionRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockDocumentRepository is a testify mock of repository.DocumentRepository.
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) InsertDocument(ctx context.Context, dataCollection string, doc bson.M) error {
	args := m.Called(ctx, dataCollection, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetDocument(ctx context.Context, dataCollection string, filter bson.M) (bson.M, error) {
	args := m.Called(ctx, dataCollection, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, dataCollection string, filter bson.M, update map[string]any) (bool, error) {
	args := m.Called(ctx, dataCollection, filter, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, dataCollection string, filter bson.M) (bool, error) {
	args := m.Called(ctx, dataCollection, filter)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentRepository) FindDocuments(ctx context.Context, dataCollection string, filter bson.M, limit, skip int64) ([]bson.M, int64, error) {
	args := m.Called(ctx, dataCollection, filter, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]bson.M), args.Get(1).(int64), args.Error(2)
}

// RecordingPublisher captures emitted events for assertions.
type RecordingPublisher struct {
	Events []events.Event
}

func (p *RecordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.Events = append(p.Events, event)
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }
