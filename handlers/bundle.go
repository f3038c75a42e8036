package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handlers registered by routes.RegisterRoutes.
type HandlerBundle struct {
	IndexHandler   gin.HandlerFunc
	HealthHandler  gin.HandlerFunc
	SearchHandler  gin.HandlerFunc
	OptionsHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle around a search handler.
func NewHandlerBundle(search *SearchHandler) *HandlerBundle {
	return &HandlerBundle{
		IndexHandler:   IndexHandler,
		HealthHandler:  HealthHandler,
		SearchHandler:  search.Search,
		OptionsHandler: search.Options,
	}
}
