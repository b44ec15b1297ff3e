package main

import (
	"context"
	"log"

	"github.com/trichocare/backend/config"
	"github.com/trichocare/backend/internal/api"
	"github.com/trichocare/backend/internal/database"
	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/server"
	"github.com/trichocare/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// A broken scoring guide is the one config error worth dying for;
	// every report depends on it.
	guide, err := scoring.LoadGuide(cfg.ScoringGuidePath)
	if err != nil {
		log.Fatalf("Failed to load scoring guide: %v", err)
	}
	engine := scoring.NewEngine(guide)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	roleService := service.NewRoleService(db)
	if err := roleService.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed default roles: %v", err)
	}

	deps := api.Deps{
		DB:     db,
		Engine: engine,
		Auth:   service.NewAuthService(db, cfg.JWTSecret),
		Roles:  roleService,
	}

	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Redis unavailable, analysis creation is unthrottled: %v", err)
	} else {
		deps.Redis = redisClient
	}

	if s3Config, err := config.NewS3Config(ctx); err != nil {
		log.Printf("Warning: S3 unavailable, scalp images will not be stored: %v", err)
	} else {
		if err := s3Config.SetupBucketPolicy(ctx); err != nil {
			log.Printf("Warning: could not apply bucket policy, stored image URLs may not be readable: %v", err)
		}
		deps.Images = service.NewScalpImageService(s3Config)
	}

	srv := server.NewServer(deps, cfg.AllowedOrigins)
	log.Printf("Starting server on :%s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
