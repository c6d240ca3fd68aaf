package router

import (
	"storesvc/internal/store/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.StoreHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Collection registry
	v1.POST("/collections", h.CreateCollection)
	v1.GET("/collections/:token", h.GetCollection)
	v1.PUT("/collections/:token", h.UpdateCollection)
	v1.PUT("/collections/:token/schema", h.UpdateCollectionSchema)
	v1.GET("/collections/:token/data", h.ListCollectionData)

	// Documents
	v1.POST("/collections/:token/documents", h.CreateDocument)
	v1.GET("/collections/:token/documents/:document_id", h.GetDocument)
	v1.PUT("/collections/:token/documents/:document_id", h.UpdateDocument)
	v1.DELETE("/collections/:token/documents/:document_id", h.DeleteDocument)
}
