package model

// ListCollectionDataReq pages through a collection's documents.
type ListCollectionDataReq struct {
	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=1000"`
}

func (r *ListCollectionDataReq) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = 100
	}
	if r.Size > 1000 {
		r.Size = 1000
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *ListCollectionDataReq) Limit() int64 {
	return int64(r.Size)
}

func (r *ListCollectionDataReq) Skip() int64 {
	return int64((r.Page - 1) * r.Size)
}
