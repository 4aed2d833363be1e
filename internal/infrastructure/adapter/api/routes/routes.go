package routes

import (
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for form boundaries and headers around the image
const multipartOverhead = 1 << 20

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth       *handler.AuthHandler
	Prediction *handler.PredictionHandler
	Health     *handler.HealthHandler
}

// Options configures route mounting
type Options struct {
	StaticDir      string // served at /static
	MaxUploadBytes int64
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth usecase.AuthUseCase, opts Options) {
	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)

	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	requireUser := middleware.Authenticate(auth)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.GET("/me", requireUser, h.Auth.Me)
		authRoutes.DELETE("/me", requireUser, h.Auth.DeleteProfile)
	}

	predictRoutes := router.Group("/predict", requireUser)
	{
		predictRoutes.POST("/", middleware.BodyLimit(opts.MaxUploadBytes+multipartOverhead), h.Prediction.Predict)
		predictRoutes.GET("/history", h.Prediction.History)
		predictRoutes.DELETE("/clear", h.Prediction.Clear)
		predictRoutes.GET("/:id", h.Prediction.Get)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
