package routes

import (
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/api/handler"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	entryHandler *handler.EntryHandler,
	clockHandler *handler.ClockHandler,
) {
	// Entry routes
	entryRoutes := router.Group("/entries")
	{
		entryRoutes.POST("", entryHandler.CreateEntry)
		entryRoutes.GET("", entryHandler.ListEntries)
		entryRoutes.GET("/:entryId", entryHandler.GetEntry)
		entryRoutes.POST("/:entryId/shift", entryHandler.ShiftEntry)
		entryRoutes.GET("/:entryId/format", entryHandler.FormatEntry)
		entryRoutes.DELETE("/:entryId", entryHandler.DeleteEntry)
	}

	// Difference route sits outside the group because it binds two IDs
	router.GET("/entries/:entryId/difference/:toId", entryHandler.Difference)

	// Clock routes
	clockRoutes := router.Group("/clock")
	{
		clockRoutes.GET("/now", clockHandler.Now)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
