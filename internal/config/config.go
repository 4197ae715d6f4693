package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	GeminiAPIKey string
	ModelName    string

	DocumentPath  string
	DocumentMIME  string
	DocumentLabel string

	PollInterval   time.Duration
	RequestTimeout time.Duration

	UseMockLLM bool // true = run without credentials against the mock backend
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

func getSecondsEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("ignoring invalid %s=%q, using %s", key, v, def)
		return def
	}
	return time.Duration(n) * time.Second
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PROCURRA_PORT", "3000"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ModelName:    getEnv("PROCURRA_MODEL_NAME", "gemini-2.0-flash"),

		DocumentPath:  getEnv("PROCURRA_DOCUMENT_PATH", "./uploads/Comprehensive Method Statement.pdf"),
		DocumentMIME:  getEnv("PROCURRA_DOCUMENT_MIME", "application/pdf"),
		DocumentLabel: getEnv("PROCURRA_DOCUMENT_LABEL", "Comprehensive Method Statement"),

		PollInterval:   getSecondsEnv("PROCURRA_POLL_INTERVAL_SECONDS", 5*time.Second),
		RequestTimeout: getSecondsEnv("PROCURRA_REQUEST_TIMEOUT_SECONDS", 60*time.Second),

		UseMockLLM: getBoolEnv("PROCURRA_USE_MOCK_LLM", false),
	}

	if !cfg.UseMockLLM && cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY must be set (or PROCURRA_USE_MOCK_LLM=1)")
	}

	return cfg
}
