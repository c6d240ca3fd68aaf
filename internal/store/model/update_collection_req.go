package model

import "strings"

// UpdateCollectionReq is a partial config update. Only non-nil fields are
// written; fields/keywords/schemas route to the schema document instead of
// the config.
type UpdateCollectionReq struct {
	Name           *string              `json:"name" validate:"omitempty,max=100"`
	Desc           *string              `json:"desc" validate:"omitempty,max=500"`
	CollectionType *string              `json:"collection_type" validate:"omitempty,max=20"`
	Fields         map[string]FieldSpec `json:"fields"`
	Keywords       []string             `json:"keywords"`
	Schemas        map[string]any       `json:"schemas"`
}

func (r *UpdateCollectionReq) Validate() error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.CollectionType != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.CollectionType))
		r.CollectionType = &normalized
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.CollectionType != nil && !IsValidCollectionType(*r.CollectionType) {
		return &ErrorDetail{Code: "bad_request", Message: "unsupported collection_type: " + *r.CollectionType}
	}

	if r.ConfigUpdate() == nil && r.SchemaUpdate() == nil {
		return &ErrorDetail{Code: "bad_request", Message: "no fields to update"}
	}

	return nil
}

// ConfigUpdate returns the partial payload destined for the config document,
// or nil when no config field was provided.
func (r *UpdateCollectionReq) ConfigUpdate() map[string]any {
	update := map[string]any{}
	if r.Name != nil {
		update["name"] = *r.Name
	}
	if r.Desc != nil {
		update["desc"] = *r.Desc
	}
	if r.CollectionType != nil {
		update["collection_type"] = *r.CollectionType
	}
	if len(update) == 0 {
		return nil
	}
	return update
}

// SchemaUpdate returns the partial payload destined for the schema document,
// or nil when no schema field was provided.
func (r *UpdateCollectionReq) SchemaUpdate() map[string]any {
	update := map[string]any{}
	if len(r.Fields) > 0 {
		update["fields"] = r.Fields
	}
	if len(r.Keywords) > 0 {
		update["keywords"] = r.Keywords
	}
	if len(r.Schemas) > 0 {
		update["schemas"] = r.Schemas
	}
	if len(update) == 0 {
		return nil
	}
	return update
}
