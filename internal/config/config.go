package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mode selects the repository backing strategy.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Config keeps runtime settings for the board and the API server.
type Config struct {
	Mode             string
	ListenAddr       string
	DatabaseURL      string
	StateDir         string
	RemoteBaseURL    string
	JWTSecret        string
	JWTExpiration    time.Duration
	ReminderInterval time.Duration
	AllowedOrigins   []string
}

// Load reads configuration from environment variables with sane defaults.
// JWT_SECRET is only required when the process serves the API.
func Load() (Config, error) {
	cfg := Config{
		Mode:             strings.TrimSpace(os.Getenv("TASKBOARD_MODE")),
		ListenAddr:       strings.TrimSpace(os.Getenv("LISTEN_ADDR")),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		StateDir:         strings.TrimSpace(os.Getenv("STATE_DIR")),
		RemoteBaseURL:    strings.TrimSpace(os.Getenv("API_BASE_URL")),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTExpiration:    parseHours(os.Getenv("JWT_EXPIRATION_HOURS")),
		ReminderInterval: parseHours(os.Getenv("REMINDER_INTERVAL_HOURS")),
	}

	if cfg.Mode == "" {
		cfg.Mode = ModeLocal
	}
	if cfg.Mode != ModeLocal && cfg.Mode != ModeRemote {
		return cfg, fmt.Errorf("TASKBOARD_MODE must be %q or %q", ModeLocal, ModeRemote)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskboard.db"
	}
	if cfg.StateDir == "" {
		cfg.StateDir = ".taskboard"
	}
	if cfg.RemoteBaseURL == "" {
		cfg.RemoteBaseURL = "http://localhost:8080"
	}
	if cfg.JWTExpiration == 0 {
		cfg.JWTExpiration = 24 * time.Hour
	}
	if cfg.ReminderInterval == 0 {
		cfg.ReminderInterval = 5 * time.Hour
	}

	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	return cfg, nil
}

func parseHours(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return 0
	}
	return time.Duration(hours) * time.Hour
}
