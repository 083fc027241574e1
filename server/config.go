package server

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings of the HTTP layer.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// CORSOrigins lists allowed origins; "*" allows all.
	CORSOrigins []string

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string

	// GraphCSV and CoordsCSV optionally point at files to preload the graph
	// from at startup. Empty means start from the bundled sample network.
	GraphCSV  string
	CoordsCSV string
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present (missing files are fine).
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:      envOrDefault("FLOWROUTE_ADDR", ":8080"),
		LogLevel:  envOrDefault("FLOWROUTE_LOG_LEVEL", "info"),
		GraphCSV:  os.Getenv("FLOWROUTE_GRAPH_CSV"),
		CoordsCSV: os.Getenv("FLOWROUTE_COORDS_CSV"),
	}

	origins := envOrDefault("FLOWROUTE_CORS_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
