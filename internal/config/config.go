package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	Workspace string
	Model     string
	APIKey    string
	BaseURL   string
	Workers   int
}

// Load reads configuration from a .env file if present, then the
// environment. Workspace left empty means "use the default under $HOME".
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Addr:      getenv("DRAFTLENS_ADDR", ":8080"),
		Workspace: getenv("DRAFTLENS_WORKSPACE", ""),
		Model:     getenv("DRAFTLENS_MODEL", "gpt-4o-mini"),
		APIKey:    getenv("OPENAI_API_KEY", ""),
		BaseURL:   getenv("OPENAI_BASE_URL", ""),
		Workers:   getenvInt("DRAFTLENS_WORKERS", 0),
	}
}

func getenv(name, fallback string) string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return raw
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
