package main

import (
	"fmt"
	"log"

	"expensey/internal/config"
	"expensey/internal/handler"
	"expensey/internal/parser"
	"expensey/internal/parser/openai"
	"expensey/internal/port"
	"expensey/internal/repository/postgres"
	"expensey/internal/router"
	"expensey/internal/service"
	"expensey/internal/usage"
)

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

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	txRepo := postgres.NewTransactionRepo(db)

	// Initialize the extraction core. Without an API key the remote path is
	// disabled entirely and extraction runs heuristic-only.
	accountant := usage.NewAccountant(cfg.Pricing)
	var remote port.ExpenseParser
	if cfg.OpenAI.APIKey != "" {
		remote = openai.NewParser(&cfg.OpenAI, accountant)
	} else {
		log.Printf("no OpenAI API key configured; extraction runs heuristic-only")
	}
	extractor := parser.NewFallbackExtractor(remote, parser.NewHeuristic())

	// Initialize services
	parseSvc := service.NewParseService(extractor)
	txSvc := service.NewTransactionService(txRepo)

	// Initialize handlers
	parseH := handler.NewParseHandler(parseSvc)
	txH := handler.NewTransactionHandler(txSvc)
	usageH := handler.NewUsageHandler(accountant)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, parseH, txH, usageH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
