package container

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cantotalk/aacboard-backend/internal/config"
	"github.com/cantotalk/aacboard-backend/internal/delivery/http"
	"github.com/cantotalk/aacboard-backend/internal/delivery/http/handler"
	"github.com/cantotalk/aacboard-backend/internal/delivery/http/middleware"
	"github.com/cantotalk/aacboard-backend/internal/infrastructure/azuretts"
	"github.com/cantotalk/aacboard-backend/internal/infrastructure/database"
	"github.com/cantotalk/aacboard-backend/internal/infrastructure/server"
	"github.com/cantotalk/aacboard-backend/internal/logger"
	"github.com/cantotalk/aacboard-backend/internal/repository/postgres"
	"github.com/cantotalk/aacboard-backend/internal/usecase/communicator"
	"github.com/cantotalk/aacboard-backend/internal/usecase/placement"
	"github.com/cantotalk/aacboard-backend/internal/usecase/speech"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *logrus.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(cfg)

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis; the rate limiter fails open without it
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, rate limiting disabled")
		redisClient = nil
	}

	// Initialize TTS provider client
	ttsClient := azuretts.NewClient(&cfg.TTS)
	if !ttsClient.Configured() {
		log.Warn("no azure speech key configured, synthesis will use the browser fallback")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	cardRepo := postgres.NewCardRepository(db)
	placementRepo := postgres.NewPlacementRepository(db)

	// Initialize use cases
	communicatorUseCase := communicator.NewCommunicatorUseCase(profileRepo, log)
	placementUseCase := placement.NewPlacementUseCase(placementRepo, profileRepo, cardRepo, log)
	speechUseCase := speech.NewSpeechUseCase(ttsClient, cfg.Storage.UploadsDir, log)

	// Initialize handlers
	communicatorHandler := handler.NewCommunicatorHandler(communicatorUseCase)
	placementHandler := handler.NewPlacementHandler(placementUseCase)
	ttsHandler := handler.NewTTSHandler(speechUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWT.Secret, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 60, time.Minute, log)

	// Initialize router
	router := http.NewRouter(
		communicatorHandler,
		placementHandler,
		ttsHandler,
		authMiddleware,
		rateLimiter,
		cfg.Storage.UploadsDir,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.WithError(err).Error("error closing redis")
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
