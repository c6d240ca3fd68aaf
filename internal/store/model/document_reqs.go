package model

// Document writes are schemaless beyond the reserved identifier and audit
// keys, which callers may not set themselves.
var reservedDocumentKeys = []string{"_id", "id", "document_id", "token", "created", "modified"}

type CreateDocumentReq struct {
	Data map[string]any `json:"data" validate:"required"`
}

func (r *CreateDocumentReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	r.Data = stripReservedKeys(r.Data)
	if len(r.Data) == 0 {
		return &ErrorDetail{Code: "bad_request", Message: "data must not be empty"}
	}
	return nil
}

type UpdateDocumentReq struct {
	Data map[string]any `json:"data" validate:"required"`
}

func (r *UpdateDocumentReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	r.Data = stripReservedKeys(r.Data)
	if len(r.Data) == 0 {
		return &ErrorDetail{Code: "bad_request", Message: "data must not be empty"}
	}
	return nil
}

func stripReservedKeys(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	for _, key := range reservedDocumentKeys {
		delete(out, key)
	}
	return out
}
