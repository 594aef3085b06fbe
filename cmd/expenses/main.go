package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/rohan-06-eng/cantilver-expense/internal/auth"
	"github.com/rohan-06-eng/cantilver-expense/internal/cli"
	"github.com/rohan-06-eng/cantilver-expense/internal/config"
	"github.com/rohan-06-eng/cantilver-expense/internal/service"
	"github.com/rohan-06-eng/cantilver-expense/internal/session"
	"github.com/rohan-06-eng/cantilver-expense/internal/storage/sqlite"
	"github.com/rohan-06-eng/cantilver-expense/pkg/logging"
)

func main() {
	// .env is optional; real config comes from the environment
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		var err error
		secret, err = session.LoadOrCreateSecret(filepath.Join(filepath.Dir(cfg.DBPath), "session_secret"))
		if err != nil {
			slog.Error("Failed to set up session secret", "error", err)
			os.Exit(1)
		}
	}

	// Schema initialization runs here, at process start
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err, "database", cfg.DBPath)
		os.Exit(1)
	}
	defer store.Close()
	slog.Debug("Storage initialized", "database", cfg.DBPath)

	app := &cli.App{
		Auth:     auth.NewPasswordAuthenticator(store),
		Sessions: auth.NewJWTManager(secret, cfg.SessionTTL),
		Tokens:   session.NewFileStore(cfg.SessionTokenPath),
		Ledger:   service.NewLedgerService(store),
		Report:   service.NewReportService(store),
		Catalog:  service.NewCatalogService(store),
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
