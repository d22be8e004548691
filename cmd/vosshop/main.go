package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobileking0827/VossShop/internal/cart"
	"github.com/mobileking0827/VossShop/internal/catalog"
	"github.com/mobileking0827/VossShop/internal/config"
	"github.com/mobileking0827/VossShop/internal/money"
	"github.com/mobileking0827/VossShop/internal/tui"
	"go.uber.org/zap"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// newLogger writes structured logs to a file; stdout belongs to the TUI.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func main() {
	cfg, err := config.Load(getEnv("VOSSHOP_CONFIG", "vosshop.yaml"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("VossShop started",
		zap.String("db_path", cfg.Catalog.Path),
		zap.String("currency", cfg.Currency),
	)

	repo, err := catalog.NewRepository(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.Catalog.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations completed successfully")

	basket := cart.New()
	prices := money.NewSymbolFormatter(cfg.Currency)

	app := tui.NewApp(repo, basket, prices, logger)
	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		logger.Fatal("program failed", zap.Error(err))
	}

	// Checkout processing lives outside this app; hand the intent to the
	// terminal and leave the cart untouched.
	if a, ok := final.(tui.App); ok && a.CheckoutRequested() {
		snap := basket.TakeSnapshot()
		total, _ := prices.Format(snap.Total)
		fmt.Printf("Checkout requested for %d item(s), total %s.\n", len(snap.Entries), total)
		logger.Info("session ended at checkout",
			zap.Int("items", len(snap.Entries)),
			zap.Int64("total_cents", int64(snap.Total)),
			zap.Time("captured_at", snap.CapturedAt),
		)
	}
}
