package model

// UpdateSchemaReq merges a JSON-schema fragment into a collection's stored
// schema: properties are merged key-by-key, required lists are unioned and
// type overrides when present.
type UpdateSchemaReq struct {
	Type       string         `json:"type" validate:"omitempty,max=20"`
	Properties map[string]any `json:"properties" validate:"required"`
	Required   []string       `json:"required"`
}

func (r *UpdateSchemaReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if len(r.Properties) == 0 {
		return &ErrorDetail{Code: "bad_request", Message: "properties must not be empty"}
	}
	return nil
}
