package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"skema/internal/backend"
	"skema/internal/config"
	"skema/internal/domain"
	"skema/internal/extract"
	"skema/internal/handler"
	"skema/internal/port"
	"skema/internal/repository/memory"
	"skema/internal/repository/postgres"
	"skema/internal/router"
	"skema/internal/service"
	sessionmemory "skema/internal/session/memory"
	sessionredis "skema/internal/session/redis"

	_ "skema/docs"
	_ "skema/internal/backend/anthropic"
	_ "skema/internal/backend/gemini"
	_ "skema/internal/backend/openai"
)

// @title Skema API
// @version 1.0
// @description Schema-constrained structured extraction over pluggable LLM backends with tiered strategy fallback.
// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Schema catalog storage
	var (
		db         *sqlx.DB
		schemaRepo port.SchemaRepository
	)
	if cfg.DB.Store == "postgres" {
		db, err = postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		schemaRepo = postgres.NewSchemaRepo(db)
	} else {
		schemaRepo = memory.NewSchemaRepo()
	}

	// Session storage
	var (
		redisClient  *redis.Client
		sessionStore port.SessionStore
	)
	if cfg.Session.Store == "redis" {
		redisClient, err = sessionredis.NewClient(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		sessionStore = sessionredis.NewStore(redisClient, cfg.Session.MaxTurns, cfg.Redis.SessionTTL)
	} else {
		sessionStore = sessionmemory.NewStore(cfg.Session.MaxTurns)
	}

	// LLM backend
	llm, err := backend.New(&cfg.Backend)
	if err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}

	// Extraction pipeline
	strategies, err := buildStrategies(cfg.Extract.Strategies, llm)
	if err != nil {
		return fmt.Errorf("failed to build strategy chain: %w", err)
	}
	orchestrator := extract.NewOrchestrator(strategies...)

	// Initialize services
	schemaSvc := service.NewSchemaService(schemaRepo)
	extractionSvc := service.NewExtractionService(orchestrator, schemaRepo)
	chatSvc := service.NewChatService(llm, sessionStore)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc)
	schemaH := handler.NewSchemaHandler(schemaSvc)
	chatH := handler.NewChatHandler(chatSvc)
	healthH := handler.NewHealthHandler(db, redisClient)

	// Setup router
	r := router.Setup(extractH, schemaH, chatH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildStrategies maps configured strategy names onto constructed strategies
// sharing one backend. The resulting order is the default fallback order for
// requests that do not override it.
func buildStrategies(names []string, llm port.LLMBackend) ([]extract.Strategy, error) {
	strategies := make([]extract.Strategy, 0, len(names))
	for _, name := range names {
		switch domain.AllStrategies[name] {
		case domain.StrategyBoundFunction:
			strategies = append(strategies, extract.NewBindingStrategy(llm))
		case domain.StrategyInstructionGuided:
			strategies = append(strategies, extract.NewGuidedStrategy(llm))
		case domain.StrategyNativeMode:
			strategies = append(strategies, extract.NewNativeStrategy(llm))
		default:
			return nil, fmt.Errorf("strategy %q: %w", name, domain.ErrUnknownStrategy)
		}
	}
	return strategies, nil
}
