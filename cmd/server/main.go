package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "wedding-backend/internal/api/http"
	"wedding-backend/internal/config"
	"wedding-backend/internal/logger"
	"wedding-backend/internal/repository/postgres"
	"wedding-backend/internal/security"
	"wedding-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting wedding backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	emailSvc := service.NewEmailService(cfg.Email, cfg.Wedding)
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, tokenManager)
	guestSvc := service.NewGuestService(store.GuestRepository)
	invitationSvc := service.NewInvitationService(store.GuestRepository, emailSvc, cfg.Wedding.BaseURL)
	listsSvc := service.NewListsService(store.GuestRepository)
	statsSvc := service.NewStatsService(store.GuestRepository)

	router := httpapi.NewRouter(tokenManager, authSvc, guestSvc, invitationSvc, listsSvc, statsSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
