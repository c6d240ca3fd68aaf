package handler

import (
	"errors"
	"net/http"

	"storesvc/internal/store/model"
	"storesvc/internal/store/service"
)

// Helper to map service errors to HTTP status and envelope body
func httpError(err error) (int, model.ErrorEnvelope) {
	var status int
	var msg string

	switch {
	case errors.Is(err, service.ErrCollectionNotFound):
		status = http.StatusNotFound
		msg = "Collection not found"
	case errors.Is(err, service.ErrDocumentNotFound):
		status = http.StatusNotFound
		msg = "Document not found"
	case errors.Is(err, service.ErrCollectionExists):
		status = http.StatusConflict
		msg = "Collection already exists"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		msg = "Invalid input"
	default:
		status = http.StatusInternalServerError
		msg = err.Error()
	}

	return status, model.NewErrorEnvelope(msg)
}

func validationError(err error) model.ErrorEnvelope {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return model.NewErrorEnvelope(detail.Message)
	}
	return model.NewErrorEnvelope(err.Error())
}
