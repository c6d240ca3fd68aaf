package handler

import (
	"net/http"

	"storesvc/internal/store/model"
	"storesvc/internal/store/service"

	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	Service service.StoreService
}

func NewStoreHandler(s service.StoreService) *StoreHandler {
	return &StoreHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// respond wraps a payload in the success envelope. Messages are non-empty
// literals, so a construction failure is a programming error surfaced as 500.
func respond[T any](c echo.Context, status int, message string, data T) error {
	resp, err := model.NewResponse(message, data)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.NewErrorEnvelope("Response construction failed"))
	}
	return c.JSON(status, resp)
}

func respondPage[T any](c echo.Context, status int, message string, count int64, data []T) error {
	resp, err := model.NewPaginatedResponse(message, &count, data)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.NewErrorEnvelope("Response construction failed"))
	}
	return c.JSON(status, resp)
}
