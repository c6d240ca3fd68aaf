package handler

import (
	"net/http"

	"storesvc/internal/store/model"

	"github.com/labstack/echo/v4"
)

// CreateCollection handles POST /collections
func (h *StoreHandler) CreateCollection(c echo.Context) error {
	var req model.CreateCollectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.NewErrorEnvelope("Invalid body"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	view, err := h.Service.CreateCollection(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusCreated, "Collection stored successfully", view)
}

// GetCollection handles GET /collections/:token
func (h *StoreHandler) GetCollection(c echo.Context) error {
	token := c.Param("token")

	view, err := h.Service.GetCollection(c.Request().Context(), token)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusOK, "Collection found", view)
}

// UpdateCollection handles PUT /collections/:token
func (h *StoreHandler) UpdateCollection(c echo.Context) error {
	token := c.Param("token")

	var req model.UpdateCollectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.NewErrorEnvelope("Invalid body"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	view, err := h.Service.UpdateCollection(c.Request().Context(), token, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusOK, "Collection updated successfully", view)
}

// UpdateCollectionSchema handles PUT /collections/:token/schema
func (h *StoreHandler) UpdateCollectionSchema(c echo.Context) error {
	token := c.Param("token")

	var req model.UpdateSchemaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.NewErrorEnvelope("Invalid body"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	schema, err := h.Service.UpdateCollectionSchema(c.Request().Context(), token, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respond(c, http.StatusOK, "Collection schema updated successfully", schema)
}

// ListCollectionData handles GET /collections/:token/data
func (h *StoreHandler) ListCollectionData(c echo.Context) error {
	token := c.Param("token")

	var req model.ListCollectionDataReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.NewErrorEnvelope("Invalid parameters"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	docs, total, err := h.Service.ListCollectionData(c.Request().Context(), token, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return respondPage(c, http.StatusOK, "Collection data fetched successfully", total, docs)
}
