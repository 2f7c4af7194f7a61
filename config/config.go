package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all paths and credentials for one run. It is built once in
// main and passed into every component; nothing reads the environment after
// Load returns.
type Config struct {
	// ManifestDir is where generated manifest JSON files are written.
	ManifestDir string
	// OutputDir holds run artifacts, including the history log.
	OutputDir string
	// HistoryPath is the append-only CSV of all past runs.
	HistoryPath string

	// GeminiAPIKey enables remote generation via the Gemini REST API.
	GeminiAPIKey string
	// GeminiEndpoint overrides the default Gemini URL (SCRIPT_API_URL).
	GeminiEndpoint string
	// OpenAIAPIKey enables remote generation via OpenAI structured outputs.
	OpenAIAPIKey string
}

// Load builds the config from the environment, reading a .env file first if
// one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		ManifestDir:    envOr("SCRIPTGEN_MANIFEST_DIR", "manifests"),
		OutputDir:      envOr("SCRIPTGEN_OUTPUT_DIR", "outputs"),
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiEndpoint: strings.TrimSpace(os.Getenv("SCRIPT_API_URL")),
		OpenAIAPIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}
	cfg.HistoryPath = filepath.Join(cfg.OutputDir, "history.csv")
	return cfg
}

// EnsureDirs creates the manifest and output directories. It is idempotent
// and must be called before any write.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.ManifestDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(c.OutputDir, 0o755)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
