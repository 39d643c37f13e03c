package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	httpapi "verdata-backend/internal/api/http"
	"verdata-backend/internal/config"
	"verdata-backend/internal/logger"
	"verdata-backend/internal/repository"
	"verdata-backend/internal/repository/memory"
	"verdata-backend/internal/repository/postgres"
	"verdata-backend/internal/security"
	"verdata-backend/internal/service"
	"verdata-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Verdata Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Record store
	var repo repository.RequestRepository
	switch cfg.Database.Driver {
	case "memory":
		logger.Info("Using in-memory record store")
		repo = memory.NewStore()
	default:
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
		repo = postgres.NewStore(db)
	}

	// Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.SessionExpiryMinutes)*time.Minute)
	policy := security.NewAccessPolicy()

	// Document storage
	logger.Info("Using local document storage", "upload_dir", cfg.Storage.UploadDir)
	localStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize local storage", "error", err)
		log.Fatalf("Failed to initialize local storage: %v", err)
	}

	// Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	adminHash := cfg.Admin.PasswordHash
	if adminHash == "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		adminHash = string(hashed)
	}
	authSvc := service.NewAuthService(tokenManager, service.AdminCredential{
		Username:     cfg.Admin.Username,
		PasswordHash: adminHash,
		DisplayName:  cfg.Admin.DisplayName,
	})
	requestSvc := service.NewRequestService(repo, policy, emailSvc)
	adminSvc := service.NewAdminService(repo, policy, emailSvc)
	documentSvc := service.NewDocumentService(repo, policy, localStorage)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		AuthSvc:      authSvc,
		RequestSvc:   requestSvc,
		AdminSvc:     adminSvc,
		DocumentSvc:  documentSvc,
		Tokens:       tokenManager,
		LocalStorage: localStorage,
	})

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
