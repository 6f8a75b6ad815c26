package config

import (
	"fmt"
	"time"

	pkgretry "github.com/NielsFilter/learnai/internal/pkg/retry"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	OpenAICfg  OpenAIConfig  `envPrefix:"OPENAI_"`
	LayoutCfg  LayoutConfig  `envPrefix:"LAYOUT_"`
	VectorCfg  VectorConfig  `envPrefix:"VECTOR_"`
	StorageCfg StorageConfig `envPrefix:"STORAGE_"`
	AudioCfg   AudioConfig   `envPrefix:"AUDIO_"`

	// Auth configuration
	AuthCfg AuthConfig `envPrefix:"AUTH_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Retrieval tuning
	RetrievalCfg RetrievalConfig `envPrefix:"RETRIEVAL_"`

	// Mock configuration: run every external capability in-process
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// OpenAIConfig targets an OpenAI-compatible endpoint (Azure OpenAI in
// production). EmbedDeployment left empty is a configuration error surfaced
// on the first embedding call, not at startup, matching the platform's
// lazy-failure behaviour for optional features.
type OpenAIConfig struct {
	Endpoint        string        `env:"ENDPOINT,notEmpty"`
	APIKey          string        `env:"API_KEY,notEmpty"`
	APIVersion      string        `env:"API_VERSION" envDefault:"2024-12-01-preview"`
	ChatDeployment  string        `env:"CHAT_DEPLOYMENT" envDefault:"gpt-35-turbo"`
	EmbedDeployment string        `env:"EMBED_DEPLOYMENT"`
	RequestTimeout  time.Duration `env:"TIMEOUT" envDefault:"120s"`
}

// LayoutConfig targets the document layout-analysis service
// (Document Intelligence prebuilt-layout).
type LayoutConfig struct {
	Endpoint       string              `env:"ENDPOINT,notEmpty"`
	APIKey         string              `env:"API_KEY,notEmpty"`
	APIVersion     string              `env:"API_VERSION" envDefault:"2024-11-30"`
	RequestTimeout time.Duration       `env:"TIMEOUT" envDefault:"60s"`
	Poll           pkgretry.PollConfig `envPrefix:"POLL_"`
}

// VectorConfig targets the Pinecone index that holds chunk records.
type VectorConfig struct {
	APIKey         string        `env:"API_KEY,notEmpty"`
	IndexHost      string        `env:"INDEX_HOST,notEmpty"`
	APIVersion     string        `env:"API_VERSION" envDefault:"2025-01"`
	Namespace      string        `env:"NAMESPACE" envDefault:"learnai"`
	RequestTimeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// StorageConfig names the GCS buckets backing the byte store.
type StorageConfig struct {
	DocsBucket  string `env:"DOCS_BUCKET,notEmpty"`
	SongsBucket string `env:"SONGS_BUCKET,notEmpty"`
}

// AudioConfig targets the audio generation service used for songs.
type AudioConfig struct {
	Endpoint        string        `env:"ENDPOINT" envDefault:"https://api.elevenlabs.io"`
	APIKey          string        `env:"API_KEY"`
	DurationSeconds int           `env:"DURATION_SECONDS" envDefault:"15"`
	RequestTimeout  time.Duration `env:"TIMEOUT" envDefault:"120s"`
}

// AuthConfig drives bearer-token verification.
type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET,notEmpty"`
	TokenCacheTTL time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"5m"`
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE" envDefault:"10485760"`  // 10 MiB
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB form budget
}

// RetrievalConfig tunes similarity search.
type RetrievalConfig struct {
	TopK          int `env:"TOP_K" envDefault:"5"`
	NumCandidates int `env:"NUM_CANDIDATES" envDefault:"100"`
}

func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}
	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.RetrievalCfg.TopK < 1 || cfg.RetrievalCfg.TopK > 50 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be between 1 and 50, got %d", cfg.RetrievalCfg.TopK)
	}
	if cfg.RetrievalCfg.NumCandidates < cfg.RetrievalCfg.TopK {
		return fmt.Errorf("RETRIEVAL_NUM_CANDIDATES must be >= RETRIEVAL_TOP_K, got %d", cfg.RetrievalCfg.NumCandidates)
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
