package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"verdata-backend/internal/config"
	"verdata-backend/internal/jobs"
	"verdata-backend/internal/logger"
	"verdata-backend/internal/repository/postgres"
	"verdata-backend/internal/scheduler"
	"verdata-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-pending-reminders')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Verdata Cronjob Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	jobRunner := jobs.NewJobRunner(store, emailSvc, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "send-pending-reminders":
			jobRunner.SendPendingReminders()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Block until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Shutting down", "signal", sig.String())
}
