package service

import (
	"context"
	"errors"

	"storesvc/internal/store/events"
	"storesvc/internal/store/model"
	"storesvc/internal/store/mongojson"
	"storesvc/internal/store/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Service) CreateDocument(ctx context.Context, token string, data map[string]any) (map[string]any, error) {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrBadRequest
	}

	ts := model.NewTimestamps()
	doc := make(bson.M, len(data)+4)
	for k, v := range data {
		doc[k] = v
	}
	doc["document_id"] = uuid.NewString()
	doc["token"] = cfg.Token
	doc["created"] = ts.Created
	doc["modified"] = ts.Modified

	name := model.DataCollectionName(cfg.CollectionType, cfg.Token)
	if err := s.Documents.InsertDocument(ctx, name, doc); err != nil {
		return nil, err
	}

	documentID := doc["document_id"].(string)
	s.publish(ctx, events.NewEvent(events.TypeDocumentCreated, token, documentID, nil))

	return mongojson.Normalize(doc), nil
}

func (s *Service) GetDocument(ctx context.Context, token, documentID string) (map[string]any, error) {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return nil, err
	}

	name := model.DataCollectionName(cfg.CollectionType, cfg.Token)
	filter := dataFilter(cfg)
	filter["document_id"] = documentID

	doc, err := s.Documents.GetDocument(ctx, name, filter)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return mongojson.Normalize(doc), nil
}

func (s *Service) UpdateDocument(ctx context.Context, token, documentID string, data map[string]any) error {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrBadRequest
	}

	name := model.DataCollectionName(cfg.CollectionType, cfg.Token)
	filter := dataFilter(cfg)
	filter["document_id"] = documentID

	matched, err := s.Documents.UpdateDocument(ctx, name, filter, data)
	if err != nil {
		return err
	}
	if !matched {
		return ErrDocumentNotFound
	}

	s.publish(ctx, events.NewEvent(events.TypeDocumentUpdated, token, documentID, nil))
	return nil
}

func (s *Service) DeleteDocument(ctx context.Context, token, documentID string) error {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return err
	}

	name := model.DataCollectionName(cfg.CollectionType, cfg.Token)
	filter := dataFilter(cfg)
	filter["document_id"] = documentID

	deleted, err := s.Documents.DeleteDocument(ctx, name, filter)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}

	s.publish(ctx, events.NewEvent(events.TypeDocumentDeleted, token, documentID, nil))
	return nil
}

func (s *Service) ListCollectionData(ctx context.Context, token string, req model.ListCollectionDataReq) ([]map[string]any, int64, error) {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return nil, 0, err
	}

	name := model.DataCollectionName(cfg.CollectionType, cfg.Token)
	docs, total, err := s.Documents.FindDocuments(ctx, name, dataFilter(cfg), req.Limit(), req.Skip())
	if err != nil {
		return nil, 0, err
	}
	return mongojson.NormalizeAll(docs), total, nil
}
