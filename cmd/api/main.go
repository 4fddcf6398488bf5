package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/studiodesk/studiodesk/internal/card"
	cardStore "github.com/studiodesk/studiodesk/internal/card/store"
	"github.com/studiodesk/studiodesk/internal/config"
	"github.com/studiodesk/studiodesk/internal/database"
	"github.com/studiodesk/studiodesk/internal/document"
	studioHttp "github.com/studiodesk/studiodesk/internal/http"
	cardHandler "github.com/studiodesk/studiodesk/internal/http/card"
	importHandler "github.com/studiodesk/studiodesk/internal/http/importcsv"
	ledgerHandler "github.com/studiodesk/studiodesk/internal/http/ledger"
	"github.com/studiodesk/studiodesk/internal/importer"
	"github.com/studiodesk/studiodesk/internal/ledger"
	ledgerStore "github.com/studiodesk/studiodesk/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		ledgerService = ledger.NewService(ledgerStore.New(db))
		cardService   = card.NewService(cardStore.New(db))
		importService = importer.NewService()
		renderer      = document.NewRenderer(document.Config{
			BusinessName: cfg.Studio.Name,
			ContactLine:  cfg.Studio.Contact,
		})
	)

	var (
		ledgerH = ledgerHandler.NewHandler(ledgerService, cfg.Debug())
		cardH   = cardHandler.NewHandler(cardService, renderer, cfg.Debug())
		importH = importHandler.NewHandler(importService, ledgerService, cfg.Debug())
	)

	router := studioHttp.New(cfg.Server.AllowedOrigins, ledgerH, cardH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "env", cfg.App.Env)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
