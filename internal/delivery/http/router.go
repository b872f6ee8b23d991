package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cantotalk/aacboard-backend/internal/delivery/http/handler"
	"github.com/cantotalk/aacboard-backend/internal/delivery/http/middleware"
)

type Router struct {
	communicatorHandler *handler.CommunicatorHandler
	placementHandler    *handler.PlacementHandler
	ttsHandler          *handler.TTSHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
	uploadsDir          string
}

func NewRouter(
	communicatorHandler *handler.CommunicatorHandler,
	placementHandler *handler.PlacementHandler,
	ttsHandler *handler.TTSHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	uploadsDir string,
) *Router {
	return &Router{
		communicatorHandler: communicatorHandler,
		placementHandler:    placementHandler,
		ttsHandler:          ttsHandler,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		uploadsDir:          uploadsDir,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Generated TTS audio
	router.Static("/uploads", r.uploadsDir)

	// Communicator routes
	comm := router.Group("/communicator")
	comm.Use(r.authMiddleware.RequireAuth())
	{
		comm.GET("/my", r.communicatorHandler.ListMine)
		comm.GET("/byemail/*email", r.communicatorHandler.ListByEmail)
		comm.POST("", r.communicatorHandler.Create)
		comm.PUT("/:id", r.communicatorHandler.Update)
	}

	// Profile-card placement routes
	placements := router.Group("/profile-cards")
	placements.Use(r.authMiddleware.RequireAuth())
	{
		placements.POST("", r.placementHandler.Add)
		placements.PUT("/:id", r.placementHandler.Update)
		placements.DELETE("/:id", r.placementHandler.Remove)
		placements.GET("", r.placementHandler.List)
	}

	// TTS routes: voices are public, speak works anonymously but resolves
	// the caller when a token is present
	tts := router.Group("/tts")
	tts.Use(r.authMiddleware.OptionalAuth(), r.rateLimiter.Limit())
	{
		tts.GET("/voices", r.ttsHandler.Voices)
		tts.POST("/speak", r.ttsHandler.Speak)
	}

	return router
}

// registerValidations adds the custom binding validators the request types
// use.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
