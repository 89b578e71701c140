package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	BackendNone   = ""
	BackendGCS    = "gcs"
	BackendS3     = "s3"
	BackendLocal  = "local"
	BackendMemory = "memory"
)

var (
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnknownProvider = errors.New("unknown image provider")
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	BodyLimitMB int    `env:"BODY_LIMIT_MB" envDefault:"20"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	DatabaseURL string `env:"DATABASE_URL"`

	Image   ImageConfig
	Storage StorageConfig
}

type ImageConfig struct {
	Provider          string        `env:"IMAGE_PROVIDER" envDefault:"openai"`
	OpenAIKey         string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	OpenAIModel       string        `env:"OPENAI_IMAGE_MODEL" envDefault:"gpt-image-1"`
	GeminiKey         string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL     string        `env:"GEMINI_BASE_URL"`
	GeminiModel       string        `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image-preview"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"120s"`
	MaxImageDimension int           `env:"MAX_IMAGE_DIMENSION" envDefault:"1536"`
}

type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND"`

	GCSBucket      string `env:"GCS_BUCKET_NAME"`
	GCSPrefix      string `env:"GCS_PREFIX"`
	GCSCredentials string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	S3Bucket          string `env:"S3_BUCKET_NAME"`
	S3Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3Prefix          string `env:"S3_PREFIX"`

	LocalDir string `env:"LOCAL_STORAGE_DIR" envDefault:"./data/images"`
}

// Load reads .env when it exists and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Image.Provider = strings.ToLower(strings.TrimSpace(cfg.Image.Provider))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Image.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Image.Provider)
	}

	switch c.Storage.Backend {
	case BackendNone, BackendGCS, BackendS3, BackendLocal, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}

	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB must be positive, got %d", c.BodyLimitMB)
	}
	if c.Image.MaxImageDimension <= 0 {
		return fmt.Errorf("MAX_IMAGE_DIMENSION must be positive, got %d", c.Image.MaxImageDimension)
	}
	return nil
}

// APIKey returns the credential of the configured provider. Empty means the
// image service is not usable.
func (c ImageConfig) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiKey
	}
	return c.OpenAIKey
}

// Model returns the model identifier of the configured provider.
func (c ImageConfig) Model() string {
	if c.Provider == ProviderGemini {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

func (c Config) Address() string {
	return ":" + c.Port
}
