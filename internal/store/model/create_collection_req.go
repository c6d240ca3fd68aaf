package model

import "strings"

// CreateCollectionReq registers a new collection: config fields plus the
// initial schema document.
type CreateCollectionReq struct {
	Name           string               `json:"name" validate:"required,max=100"`
	Desc           string               `json:"desc" validate:"omitempty,max=500"`
	CollectionType string               `json:"collection_type" validate:"required,max=20"`
	OrgID          string               `json:"org_id" validate:"required,max=50"`
	Token          string               `json:"token" validate:"required,max=64"`
	Fields         map[string]FieldSpec `json:"fields"`
	Keywords       []string             `json:"keywords"`
	Schemas        map[string]any       `json:"schemas"`
}

func (r *CreateCollectionReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Desc = strings.TrimSpace(r.Desc)
	r.CollectionType = strings.ToLower(strings.TrimSpace(r.CollectionType))
	r.OrgID = strings.TrimSpace(r.OrgID)
	r.Token = strings.TrimSpace(r.Token)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !IsValidCollectionType(r.CollectionType) {
		return &ErrorDetail{Code: "bad_request", Message: "unsupported collection_type: " + r.CollectionType}
	}

	// Fresh containers per request, never shared defaults
	if r.Fields == nil {
		r.Fields = map[string]FieldSpec{}
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	if r.Schemas == nil {
		r.Schemas = map[string]any{}
	}

	return nil
}
