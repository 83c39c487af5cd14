package main

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mealmax/internal/application"
	httpdelivery "mealmax/internal/delivery/http"
	"mealmax/internal/integration"
	"mealmax/internal/repository"
	"mealmax/pkg/config"
	"mealmax/pkg/logger"
	"mealmax/pkg/random"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	db, err := repository.NewPostgresDB(&cfg.Repo)
	if err != nil {
		log.Error("failed to init db", "error", err.Error())
		return
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := repository.RunMigrations(db, migrationFS); err != nil {
		log.Error("failed to run migrations", "error", err.Error())
		return
	}
	log.Info("Migrations applied successfully")

	repos := repository.NewRepository(db)

	var rnd random.Source = random.NewPRNG()
	if cfg.UseRandomOrg {
		rnd = random.NewRandomOrgClient()
		log.Info("Using random.org as battle random source")
	}

	var sheets *integration.SheetService
	if cfg.SheetsCredentials != "" {
		sheets, err = integration.NewSheetService(cfg.SheetsCredentials)
		if err != nil {
			log.Error("failed to init sheets integration", "error", err.Error())
			return
		}
		if cfg.SpreadsheetID != "" {
			sheets.SetSpreadsheetID(cfg.SpreadsheetID)
		}
	}

	services := application.NewService(repos, rnd, sheets, cfg.GoogleOwnerEmail, log)
	handler := httpdelivery.NewHandler(services, log)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler.InitRoutes(),
	}

	go func() {
		log.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "error", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", "error", err.Error())
	}
	log.Info("Server stopped")
}
