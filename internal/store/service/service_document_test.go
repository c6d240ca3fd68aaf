package service

import (
	"context"
	"testing"

	"storesvc/internal/store/events"
	"storesvc/internal/store/model"
	"storesvc/internal/store/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCreateDocument(t *testing.T) {
	svc, collections, documents, publisher := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)

	var inserted bson.M
	documents.On("InsertDocument", mock.Anything, "collection_data_tok-orders", mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(2).(bson.M)
		}).
		Return(nil)

	out, err := svc.CreateDocument(context.Background(), "tok-orders", map[string]any{"name": "widget"})
	require.NoError(t, err)

	assert.Equal(t, "widget", inserted["name"])
	assert.Equal(t, "tok-orders", inserted["token"])
	assert.NotEmpty(t, inserted["document_id"])
	assert.NotNil(t, inserted["created"])
	assert.NotNil(t, inserted["modified"])

	assert.Equal(t, "widget", out["name"])
	assert.Equal(t, inserted["document_id"], out["document_id"])

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.TypeDocumentCreated, publisher.Events[0].EventType)
	assert.Equal(t, inserted["document_id"], publisher.Events[0].DocumentID)
}

func TestCreateDocumentEmptyPayload(t *testing.T) {
	svc, collections, documents, _ := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)

	_, err := svc.CreateDocument(context.Background(), "tok-orders", map[string]any{})
	assert.ErrorIs(t, err, ErrBadRequest)
	documents.AssertNotCalled(t, "InsertDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDocumentScopesByToken(t *testing.T) {
	svc, collections, documents, _ := newTestService()
	cfg := testConfig("tok-pages", "webpage")

	collections.On("GetCollectionConfig", mock.Anything, "tok-pages").Return(cfg, nil)
	documents.On("GetDocument", mock.Anything, "collection_data_webpage",
		bson.M{"token": "tok-pages", "document_id": "doc-1"}).
		Return(bson.M{"document_id": "doc-1", "url": "https://example.com"}, nil)

	doc, err := svc.GetDocument(context.Background(), "tok-pages", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", doc["url"])
	documents.AssertExpectations(t)
}

func TestGetDocumentNotFound(t *testing.T) {
	svc, collections, documents, _ := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	documents.On("GetDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, repository.ErrNotFound)

	_, err := svc.GetDocument(context.Background(), "tok-orders", "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestUpdateDocument(t *testing.T) {
	svc, collections, documents, publisher := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	documents.On("UpdateDocument", mock.Anything, "collection_data_tok-orders",
		bson.M{"document_id": "doc-1"}, map[string]any{"name": "gadget"}).
		Return(true, nil)

	err := svc.UpdateDocument(context.Background(), "tok-orders", "doc-1", map[string]any{"name": "gadget"})
	require.NoError(t, err)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.TypeDocumentUpdated, publisher.Events[0].EventType)
}

func TestUpdateDocumentNotFound(t *testing.T) {
	svc, collections, documents, publisher := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	documents.On("UpdateDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil)

	err := svc.UpdateDocument(context.Background(), "tok-orders", "missing", map[string]any{"name": "gadget"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Empty(t, publisher.Events)
}

func TestDeleteDocument(t *testing.T) {
	svc, collections, documents, publisher := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	documents.On("DeleteDocument", mock.Anything, "collection_data_tok-orders",
		bson.M{"document_id": "doc-1"}).Return(true, nil)

	require.NoError(t, svc.DeleteDocument(context.Background(), "tok-orders", "doc-1"))
	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.TypeDocumentDeleted, publisher.Events[0].EventType)
}

func TestDeleteDocumentNotFound(t *testing.T) {
	svc, collections, documents, _ := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	documents.On("DeleteDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil)

	err := svc.DeleteDocument(context.Background(), "tok-orders", "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestListCollectionData(t *testing.T) {
	svc, collections, documents, _ := newTestService()
	cfg := testConfig("tok-orders", "table")

	collections.On("GetCollectionConfig", mock.Anything, "tok-orders").Return(cfg, nil)
	documents.On("FindDocuments", mock.Anything, "collection_data_tok-orders",
		bson.M{}, int64(100), int64(0)).
		Return([]bson.M{{"document_id": "doc-1"}, {"document_id": "doc-2"}}, int64(7), nil)

	req := model.ListCollectionDataReq{}
	require.NoError(t, req.Validate())

	docs, total, err := svc.ListCollectionData(context.Background(), "tok-orders", req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-1", docs[0]["document_id"])
}

func TestListCollectionDataCollectionMissing(t *testing.T) {
	svc, collections, _, _ := newTestService()

	collections.On("GetCollectionConfig", mock.Anything, "missing").
		Return(nil, repository.ErrNotFound)

	_, _, err := svc.ListCollectionData(context.Background(), "missing", model.ListCollectionDataReq{})
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}
