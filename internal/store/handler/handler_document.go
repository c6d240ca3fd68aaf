package handler

import (
	"net/http"

	"storesvc/internal/store/model"

	"github.com/labstack/echo/v4"
)

// CreateDocument handles POST /collections/:token/documents
func (h *StoreHandler) CreateDocument(c echo.Context) error {
	token := c.Param("token")

	var req model.CreateDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.NewErrorEnvelope("Invalid body"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	doc, err := h.Service.CreateDocument(c.Request().Context(), token, req.Data)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusCreated, "Document stored successfully", doc)
}

// GetDocument handles GET /collections/:token/documents/:document_id
func (h *StoreHandler) GetDocument(c echo.Context) error {
	token := c.Param("token")
	documentID := c.Param("document_id")

	doc, err := h.Service.GetDocument(c.Request().Context(), token, documentID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusOK, "Doc data fetched successfully", doc)
}

// UpdateDocument handles PUT /collections/:token/documents/:document_id
func (h *StoreHandler) UpdateDocument(c echo.Context) error {
	token := c.Param("token")
	documentID := c.Param("document_id")

	var req model.UpdateDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.NewErrorEnvelope("Invalid body"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.UpdateDocument(c.Request().Context(), token, documentID, req.Data); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusOK, "Document updated successfully", map[string]any{"document_id": documentID})
}

// DeleteDocument handles DELETE /collections/:token/documents/:document_id
func (h *StoreHandler) DeleteDocument(c echo.Context) error {
	token := c.Param("token")
	documentID := c.Param("document_id")

	if err := h.Service.DeleteDocument(c.Request().Context(), token, documentID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusOK, "Document deleted successfully", map[string]any{"document_id": documentID})
}
