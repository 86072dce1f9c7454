package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/menu"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/router"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/sheet"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/venue"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	sheetURL := os.Getenv("SHEET_URL")
	if sheetURL == "" {
		log.Fatal("❌ Missing env var: SHEET_URL")
	}

	// ───────────────────────── LOGGER ─────────────────────────
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("❌ Logger init failed:", err)
	}
	defer logger.Sync()

	// ───────────────────────── MENU PIPELINE ─────────────────────────
	source := sheet.NewClient(sheetURL)
	menuService := menu.NewService(source, logger)
	menuHandler := menu.NewHandler(menuService)

	// Startup ingest. Failure is not fatal: the API starts anyway and
	// serves 503 until a reload succeeds.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := menuService.Reload(ctx); err != nil {
		logger.Warn("startup ingest failed, menu unavailable until next reload")
	}
	cancel()

	// ───────────────────────── REFRESH WORKER ─────────────────────────
	if interval := envDuration("MENU_REFRESH_INTERVAL"); interval > 0 {
		go menuService.RunRefreshWorker(context.Background(), interval)
	}

	// ───────────────────────── VENUE STATUS ─────────────────────────
	hours := venue.Hours{
		Open:  envInt("VENUE_OPEN_HOUR", 7),
		Close: envInt("VENUE_CLOSE_HOUR", 24),
	}
	weather := venue.NewWeatherClient(
		envFloat("VENUE_LAT", 40.8106),
		envFloat("VENUE_LON", 15.1127),
	)
	venueHandler := venue.NewHandler(hours, weather, logger)

	// ───────────────────────── START ─────────────────────────
	r := router.New(menuHandler, venueHandler, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("🚀 menu board API running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// --------------------------------------------------
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("❌ Invalid %s: %v", key, err)
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("❌ Invalid %s: %v", key, err)
	}
	return f
}

func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("❌ Invalid %s: %v", key, err)
	}
	return d
}
