package service

import (
	"context"
	"errors"

	"storesvc/internal/store/events"
	"storesvc/internal/store/model"
	"storesvc/internal/store/repository"
)

func (s *Service) CreateCollection(ctx context.Context, req model.CreateCollectionReq) (*model.CollectionView, error) {
	cfg := &model.CollectionConfig{
		Name:           req.Name,
		Desc:           req.Desc,
		CollectionType: req.CollectionType,
		OrgID:          req.OrgID,
		Token:          req.Token,
		Timestamps:     model.NewTimestamps(),
	}
	schema := &model.CollectionSchema{
		Fields:     req.Fields,
		Keywords:   req.Keywords,
		Schemas:    req.Schemas,
		Timestamps: model.NewTimestamps(),
	}

	if err := s.Collections.CreateCollection(ctx, cfg, schema); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCollectionExists
		}
		return nil, err
	}

	s.publish(ctx, events.NewEvent(events.TypeCollectionCreated, cfg.Token, "", map[string]any{
		"collection_id":   cfg.ID.Hex(),
		"collection_type": cfg.CollectionType,
		"org_id":          cfg.OrgID,
	}))

	return &model.CollectionView{
		CollectionID: cfg.ID.Hex(),
		Collection:   cfg,
		Schema:       schema,
	}, nil
}

func (s *Service) GetCollection(ctx context.Context, token string) (*model.CollectionView, error) {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return nil, err
	}

	schema, err := s.Collections.GetCollectionSchema(ctx, cfg.ID.Hex())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return &model.CollectionView{
		CollectionID: cfg.ID.Hex(),
		Collection:   cfg,
		Schema:       schema,
	}, nil
}

func (s *Service) UpdateCollection(ctx context.Context, token string, req model.UpdateCollectionReq) (*model.CollectionView, error) {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return nil, err
	}

	if update := req.ConfigUpdate(); update != nil {
		// Stamped helper: acceptance by the store counts as success even when
		// nothing matched
		if _, err := s.Collections.UpdateCollectionConfig(ctx, token, update); err != nil {
			return nil, err
		}
	}

	if update := req.SchemaUpdate(); update != nil {
		if _, err := s.Collections.UpdateCollectionSchema(ctx, cfg.ID.Hex(), update); err != nil {
			return nil, err
		}
	}

	cfg, err = s.requireCollection(ctx, token)
	if err != nil {
		return nil, err
	}
	schema, err := s.Collections.GetCollectionSchema(ctx, cfg.ID.Hex())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	s.publish(ctx, events.NewEvent(events.TypeCollectionUpdated, token, "", map[string]any{
		"collection_id": cfg.ID.Hex(),
	}))

	return &model.CollectionView{
		CollectionID: cfg.ID.Hex(),
		Collection:   cfg,
		Schema:       schema,
	}, nil
}

func (s *Service) UpdateCollectionSchema(ctx context.Context, token string, req model.UpdateSchemaReq) (*model.CollectionSchema, error) {
	cfg, err := s.requireCollection(ctx, token)
	if err != nil {
		return nil, err
	}

	schema, err := s.Collections.GetCollectionSchema(ctx, cfg.ID.Hex())
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// Late registration: no schema document yet
		schema = &model.CollectionSchema{
			CollectionID: cfg.ID.Hex(),
			OrgID:        cfg.OrgID,
			Token:        cfg.Token,
			Fields:       map[string]model.FieldSpec{},
			Keywords:     []string{},
			Schemas:      buildSchemaFragment(req),
			Timestamps:   model.NewTimestamps(),
		}
		if err := s.Collections.CreateCollectionSchema(ctx, schema); err != nil {
			return nil, err
		}
		return schema, nil
	}

	schema.Schemas = mergeSchemaFragment(schema.Schemas, req)
	if _, err := s.Collections.UpdateCollectionSchema(ctx, cfg.ID.Hex(), map[string]any{"schemas": schema.Schemas}); err != nil {
		return nil, err
	}
	return schema, nil
}

func buildSchemaFragment(req model.UpdateSchemaReq) map[string]any {
	fragment := map[string]any{
		"properties": req.Properties,
		"required":   req.Required,
	}
	if req.Type != "" {
		fragment["type"] = req.Type
	}
	return fragment
}

// mergeSchemaFragment folds the incoming fragment into the stored JSON
// schema: properties merge key-by-key, required lists union, type overrides.
func mergeSchemaFragment(current map[string]any, req model.UpdateSchemaReq) map[string]any {
	if current == nil {
		current = map[string]any{}
	}

	properties, _ := current["properties"].(map[string]any)
	if properties == nil {
		properties = map[string]any{}
	}
	for k, v := range req.Properties {
		properties[k] = v
	}
	current["properties"] = properties

	seen := map[string]bool{}
	var required []string
	appendRequired := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			required = append(required, name)
		}
	}
	switch existing := current["required"].(type) {
	case []string:
		for _, name := range existing {
			appendRequired(name)
		}
	case []any:
		for _, item := range existing {
			if name, ok := item.(string); ok {
				appendRequired(name)
			}
		}
	}
	for _, name := range req.Required {
		appendRequired(name)
	}
	if required == nil {
		required = []string{}
	}
	current["required"] = required

	if req.Type != "" {
		current["type"] = req.Type
	}
	return current
}
