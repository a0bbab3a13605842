package routes

import (
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	credentialHandler *handler.CredentialHandler,
	twoFactorHandler *handler.TwoFactorHandler,
) {
	credentials := router.Group("/credentials")
	{
		credentials.POST("", credentialHandler.Register)
		credentials.GET("/:id", credentialHandler.Show)
		credentials.POST("/:id/disable", credentialHandler.Disable)
		credentials.DELETE("/:id", credentialHandler.Delete)
	}

	twoFactor := router.Group("/two-factor")
	{
		twoFactor.POST("", twoFactorHandler.Create)
		twoFactor.GET("/:id", twoFactorHandler.Show)
		twoFactor.POST("/:id/enable", twoFactorHandler.Enable)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
