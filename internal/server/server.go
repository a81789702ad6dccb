package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vitalplan/backend/config"
	"github.com/vitalplan/backend/internal/api"
	"github.com/vitalplan/backend/internal/database"
	"github.com/vitalplan/backend/internal/router"
	"github.com/vitalplan/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg   *config.Config
	http  *http.Server
	db    *gorm.DB
	redis *redis.Client
}

// New wires the database, Redis, services and routes into a runnable
// server.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is optional: without it the daily-tip cache and rate
	// limiting degrade, nothing else.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: failed to connect to Redis: %v", err)
		redisClient = nil
	}

	llmService, err := service.NewLLMService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	svcs := api.Services{
		Auth:       service.NewAuthService(db, cfg.JWTSecret),
		Billing:    service.NewBillingService(db, cfg),
		LLM:        llmService,
		Profile:    service.NewProfileService(db),
		Preference: service.NewPreferenceService(db),
		Plan:       service.NewPlanService(db),
		Wellness:   service.NewWellnessService(db, llmService),
		Workout:    service.NewWorkoutService(db),
		Tip:        service.NewTipService(db, redisClient, llmService),
	}

	engine := router.SetupRouter(db, redisClient, svcs)

	return &Server{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("Warning: failed to close Redis client: %v", err)
		}
	}
	return s.http.Shutdown(ctx)
}
