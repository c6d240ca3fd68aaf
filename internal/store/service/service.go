package service

import (
	"context"
	"errors"
	"log/slog"

	"storesvc/internal/store/events"
	"storesvc/internal/store/model"
	"storesvc/internal/store/repository"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionExists   = errors.New("collection already exists")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrBadRequest         = errors.New("bad request")
)

type StoreService interface {
	CreateCollection(ctx context.Context, req model.CreateCollectionReq) (*model.CollectionView, error)
	GetCollection(ctx context.Context, token string) (*model.CollectionView, error)
	UpdateCollection(ctx context.Context, token string, req model.UpdateCollectionReq) (*model.CollectionView, error)
	UpdateCollectionSchema(ctx context.Context, token string, req model.UpdateSchemaReq) (*model.CollectionSchema, error)
	ListCollectionData(ctx context.Context, token string, req model.ListCollectionDataReq) ([]map[string]any, int64, error)
	CreateDocument(ctx context.Context, token string, data map[string]any) (map[string]any, error)
	GetDocument(ctx context.Context, token, documentID string) (map[string]any, error)
	UpdateDocument(ctx context.Context, token, documentID string, data map[string]any) error
	DeleteDocument(ctx context.Context, token, documentID string) error
}

type Service struct {
	Collections repository.CollectionRepository
	Documents   repository.DocumentRepository
	Publisher   events.Publisher
	Logger      *slog.Logger
}

func NewService(collections repository.CollectionRepository, documents repository.DocumentRepository, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		Collections: collections,
		Documents:   documents,
		Publisher:   publisher,
		Logger:      logger,
	}
}

// requireCollection resolves a token to its config, mapping repository
// not-found to the service sentinel.
func (s *Service) requireCollection(ctx context.Context, token string) (*model.CollectionConfig, error) {
	cfg, err := s.Collections.GetCollectionConfig(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return cfg, nil
}

// dataFilter scopes reads and writes inside a data collection. Tabular
// collections own their collection outright; shared per-type collections are
// partitioned by token.
func dataFilter(cfg *model.CollectionConfig) bson.M {
	if model.IsTabularType(cfg.CollectionType) {
		return bson.M{}
	}
	return bson.M{"token": cfg.Token}
}

// publish emits a lifecycle event best-effort; a broker failure never fails
// the write it describes.
func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.Logger.Warn("event publish failed",
			"event_type", event.EventType,
			"token", event.Token,
			"error", err,
		)
	}
}
