package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/gridpath/internal/layout"
	"github.com/Zachkp/gridpath/internal/logger"
	"github.com/Zachkp/gridpath/internal/sequencer"
)

// Config is read once at startup from the environment (and .env, if present).
type Config struct {
	Port     string
	DBPath   string
	CellSize int

	Sequencer sequencer.Config

	AdminUsername string
	AdminPassword string
}

func loadConfig() Config {
	seq := sequencer.DefaultConfig()
	seq.SearchDelay = envMillis("SEARCH_DELAY_MS", seq.SearchDelay)
	seq.PathDelay = envMillis("PATH_DELAY_MS", seq.PathDelay)
	seq.WallDensity = envFloat("WALL_DENSITY", seq.WallDensity)
	seq.MarkerCount = envInt("MARKER_COUNT", 0)
	seq.MarkerSize = envInt("MARKER_SIZE", seq.MarkerSize)
	seq.Seed = uint64(envInt("GRID_SEED", 0))

	cfg := Config{
		Port:          envString("PORT", "8080"),
		DBPath:        envString("DB_PATH", "portfolio.db"),
		CellSize:      envInt("CELL_SIZE", layout.DefaultCellSize),
		Sequencer:     seq,
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	// Default credentials for development (set both in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		if gin.Mode() == gin.DebugMode {
			logger.Log.Warn("Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		if gin.Mode() == gin.DebugMode {
			logger.Log.Warn("Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	return cfg
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("Ignoring malformed integer setting")
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("Ignoring malformed number setting")
		return def
	}
	return f
}

func envMillis(key string, def time.Duration) time.Duration {
	return time.Duration(envInt(key, int(def/time.Millisecond))) * time.Millisecond
}
