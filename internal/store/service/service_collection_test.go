package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storesvc/internal/store/events"
	"storesvc/internal/store/model"
	"storesvc/internal/store/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestService() (*Service, *MockCollectionRepository, *MockDocumentRepository, *RecordingPublisher) {
	collections := new(MockCollectionRepository)
	documents := new(MockDocumentRepository)
	publisher := &RecordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(collections, documents, publisher, logger), collections, documents, publisher
}

func testConfig(token, collectionType string) *model.CollectionConfig {
	return &model.CollectionConfig{
		ID:             primitive.NewObjectID(),
		Name:           "Orders",
		CollectionType: collectionType,
		OrgID:          "org-1",
		Token:          token,
		Timestamps:     model.NewTimestamps(),
	}
}

func TestCreateCollection(t *testing.T) {
	svc, collections, _, publisher := newTestService()

	collections.On("CreateCollection", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			cfg := args.Get(1).(*model.CollectionConfig)
			cfg.ID = primitive.NewObjectID()
		}).
		Return(nil)

	view, err := svc.CreateCollection(context.Background(), model.CreateCollectionReq{
		Name:           "Orders",
		CollectionType: "table",
		OrgID:          "org-1",
		Token:          "tok-orders",
	})
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, view.Collection.ID.Hex(), view.CollectionID)
	assert.False(t, view.Collection.Created.IsZero())

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.TypeCollectionCreated, publisher.Events[0].EventType)
	assert.Equal(t, "tok-orders", publisher.Events[0].Token)
	collections.AssertExpectations(t)
}

func TestCreateCollectionDuplicate(t *testing.T) {
	svc, collections, _, publisher := newTestService()

	collections.On("CreateCollection", mock.Anything, mock.Anything, mock.Anything).
		Return(repository.ErrDuplicate)

	_, err := svc.CreateCollection(context.Background(), model.CreateCollectionReq{
		Name:           "Orders",
		CollectionType: "table",
		OrgID:          "org-1",
		Token:          "tok-orders",
	})
	assert.ErrorIs(t, err, ErrCollectionExists)
	assert.Empty(t, publisher.Events)
}

func TestGetCollection(t *testing.T) {
	svc, collections, _, _ := newTestService()
	cfg := testConfig("tok-orders", "table")
	schema := &model.CollectionSchema{CollectionID: cfg.ID.Hex()}

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	collections.On("GetCollectionSchema", mock.Anything, cfg.ID.Hex()).Return(schema, nil)

	view, err := svc.GetCollection(context.Background(), "tok-orders")
	require.NoError(t, err)
	assert.Equal(t, cfg.ID.Hex(), view.CollectionID)
	assert.Same(t, schema, view.Schema)
}

func TestGetCollectionNotFound(t *testing.T) {
	svc, collections, _, _ := newTestService()

	collections.On("GetCollectionConfig", mock.Anything, "missing").
		Return(nil, repository.ErrNotFound)

	_, err := svc.GetCollection(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestGetCollectionToleratesMissingSchema(t *testing.T) {
	svc, collections, _, _ := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	collections.On("GetCollectionSchema", mock.Anything, cfg.ID.Hex()).
		Return(nil, repository.ErrNotFound)

	view, err := svc.GetCollection(context.Background(), "tok-orders")
	require.NoError(t, err)
	assert.Nil(t, view.Schema)
}

func TestUpdateCollection(t *testing.T) {
	svc, collections, _, publisher := newTestService()
	cfg := testConfig("tok-orders", "table")
	schema := &model.CollectionSchema{CollectionID: cfg.ID.Hex()}
	name := "Orders v2"

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	collections.On("UpdateCollectionConfig", mock.Anything, "tok-orders",
		map[string]any{"name": "Orders v2"}).Return(true, nil)
	collections.On("GetCollectionSchema", mock.Anything, cfg.ID.Hex()).Return(schema, nil)

	view, err := svc.UpdateCollection(context.Background(), "tok-orders", model.UpdateCollectionReq{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, cfg.ID.Hex(), view.CollectionID)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.TypeCollectionUpdated, publisher.Events[0].EventType)
	collections.AssertExpectations(t)
	collections.AssertNotCalled(t, "UpdateCollectionSchema", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateCollectionSchemaMergesFragment(t *testing.T) {
	svc, collections, _, _ := newTestService()
	cfg := testConfig("tok-orders", "table")
	schema := &model.CollectionSchema{
		CollectionID: cfg.ID.Hex(),
		Schemas: map[string]any{
			"type":       "object",
			"properties": map[string]any{"name": map[string]any{"type": "string"}},
			"required":   []any{"name"},
		},
	}

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	collections.On("GetCollectionSchema", mock.Anything, cfg.ID.Hex()).Return(schema, nil)
	collections.On("UpdateCollectionSchema", mock.Anything, cfg.ID.Hex(), mock.Anything).Return(true, nil)

	updated, err := svc.UpdateCollectionSchema(context.Background(), "tok-orders", model.UpdateSchemaReq{
		Properties: map[string]any{"amount": map[string]any{"type": "number"}},
		Required:   []string{"amount", "name"},
	})
	require.NoError(t, err)

	properties := updated.Schemas["properties"].(map[string]any)
	assert.Contains(t, properties, "name")
	assert.Contains(t, properties, "amount")
	assert.Equal(t, []string{"name", "amount"}, updated.Schemas["required"])
	assert.Equal(t, "object", updated.Schemas["type"])
}

func TestUpdateCollectionSchemaLateRegistration(t *testing.T) {
	svc, collections, _, _ := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	collections.On("GetCollectionSchema", mock.Anything, cfg.ID.Hex()).
		Return(nil, repository.ErrNotFound)
	collections.On("CreateCollectionSchema", mock.Anything, mock.Anything).Return(nil)

	schema, err := svc.UpdateCollectionSchema(context.Background(), "tok-orders", model.UpdateSchemaReq{
		Type:       "object",
		Properties: map[string]any{"name": map[string]any{"type": "string"}},
		Required:   []string{"name"},
	})
	require.NoError(t, err)
	assert.Equal(t, cfg.ID.Hex(), schema.CollectionID)
	assert.Equal(t, cfg.Token, schema.Token)
	assert.Equal(t, "object", schema.Schemas["type"])
	collections.AssertExpectations(t)
}
