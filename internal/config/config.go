package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"

	ImagesMemory = "memory"
	ImagesGridFS = "gridfs"
	ImagesS3     = "s3"
)

// Config agrupa toda la configuración leída del entorno.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Images  ImagesConfig
	Auth    AuthConfig
	PayPal  PayPalConfig
	Limits  LimitsConfig
	Log     LogConfig
	Admin   AdminSeed
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Driver        string // memory | mongo | postgres
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
}

type ImagesConfig struct {
	Store       string // memory | gridfs | s3
	S3Bucket    string
	S3Prefix    string
	AWSRegion   string
	AWSEndpoint string // localstack / minio
}

type AuthConfig struct {
	JWTSecret  string
	IDPBaseURL string
	IDPAPIKey  string
	IDPTimeout time.Duration
}

type PayPalConfig struct {
	APIURL   string
	ClientID string
	Secret   string
	Timeout  time.Duration
}

// Configured indica si hay credenciales para hablar con PayPal.
func (p PayPalConfig) Configured() bool {
	return p.APIURL != "" && p.ClientID != "" && p.Secret != ""
}

type LimitsConfig struct {
	RatePerSecond float64
	Burst         int
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// AdminSeed: cuenta admin inicial que crea cmd/initdb.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// Load lee variables de entorno (y .env si existe) con defaults de desarrollo.
func Load() (*Config, error) {
	// .env es opcional; en prod las variables vienen del entorno.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
			MongoURI:      getEnv("MONGO_URI", ""),
			MongoDatabase: getEnv("MONGO_DATABASE", "patitas_eternas"),
			PostgresDSN:   getEnv("DB_DSN", ""),
		},
		Images: ImagesConfig{
			Store:       strings.ToLower(getEnv("IMAGE_STORE", ImagesMemory)),
			S3Bucket:    getEnv("S3_BUCKET", ""),
			S3Prefix:    getEnv("S3_PREFIX", "images/"),
			AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
			AWSEndpoint: getEnv("AWS_ENDPOINT_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("AUTH_JWT_SECRET", ""),
			IDPBaseURL: getEnv("IDP_BASE_URL", ""),
			IDPAPIKey:  getEnv("IDP_API_KEY", ""),
			IDPTimeout: getDurationEnv("IDP_TIMEOUT", 5*time.Second),
		},
		PayPal: PayPalConfig{
			APIURL:   strings.TrimRight(getEnv("PAYPAL_API_URL", ""), "/"),
			ClientID: getEnv("PAYPAL_CLIENT_ID", ""),
			Secret:   getEnv("PAYPAL_SECRET", ""),
			Timeout:  getDurationEnv("PAYPAL_TIMEOUT", 10*time.Second),
		},
		Limits: LimitsConfig{
			RatePerSecond: getFloatEnv("RATE_LIMIT_RPS", 2),
			Burst:         getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "patitas-eternas"),
		},
		Admin: AdminSeed{
			Email:    getEnv("ADMIN_EMAIL", "admin@patitaseternas.com"),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Administrador"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate detecta combinaciones que no pueden arrancar.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageMongo:
		if c.Storage.MongoURI == "" {
			errs = append(errs, errors.New("STORAGE_DRIVER=mongo requires MONGO_URI"))
		}
	case StoragePostgres:
		if c.Storage.PostgresDSN == "" {
			errs = append(errs, errors.New("STORAGE_DRIVER=postgres requires DB_DSN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	switch c.Images.Store {
	case ImagesMemory:
	case ImagesGridFS:
		if c.Storage.MongoURI == "" {
			errs = append(errs, errors.New("IMAGE_STORE=gridfs requires MONGO_URI"))
		}
	case ImagesS3:
		if c.Images.S3Bucket == "" {
			errs = append(errs, errors.New("IMAGE_STORE=s3 requires S3_BUCKET"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown IMAGE_STORE %q", c.Images.Store))
	}

	if (c.Auth.IDPBaseURL == "") != (c.Auth.IDPAPIKey == "") {
		errs = append(errs, errors.New("IDP_BASE_URL and IDP_API_KEY must be set together"))
	}
	if c.Limits.RatePerSecond < 0 || c.Limits.Burst < 0 {
		errs = append(errs, errors.New("rate limit values must be >= 0"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DevAuth indica que no hay verifier configurado y se aceptan headers de debug.
func (c *Config) DevAuth() bool {
	return c.Auth.JWTSecret == "" && c.Auth.IDPBaseURL == ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// getDurationEnv acepta "15s", "2m" o segundos enteros ("30").
func getDurationEnv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
