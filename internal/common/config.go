package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Invoice InvoiceConfig
	Batch   BatchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr        string
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

// InvoiceConfig holds extraction-related configuration
type InvoiceConfig struct {
	// Timezone is an IANA name or "Local"; it decides what "today" means.
	Timezone string
	// MaxInputChars caps prompt size at the transport edges. 0 disables the cap.
	MaxInputChars int
}

// BatchConfig holds batch, watch and export configuration
type BatchConfig struct {
	Workers       int
	QueueSize     int
	JobTimeout    time.Duration
	ExportDir     string
	WatchDebounce time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr:        getEnv("GRPC_ADDR", ":8080"),
			HTTPAddr:        getEnv("HTTP_ADDR", ":8081"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Invoice: InvoiceConfig{
			Timezone:      getEnv("INVOICE_TIMEZONE", "Local"),
			MaxInputChars: getEnvAsInt("INVOICE_MAX_INPUT_CHARS", 0),
		},
		Batch: BatchConfig{
			Workers:       getEnvAsInt("BATCH_WORKERS", 4),
			QueueSize:     getEnvAsInt("BATCH_QUEUE_SIZE", 256),
			JobTimeout:    getEnvAsDuration("BATCH_JOB_TIMEOUT", 30*time.Second),
			ExportDir:     getEnv("EXPORT_DIR", "./out"),
			WatchDebounce: getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Invoice.Timezone == "" || c.Invoice.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Invoice.Timezone)
	if err != nil {
		return nil, NewAppError("CONFIG_ERROR", "INVOICE_TIMEZONE is not a valid IANA zone", err)
	}
	return loc, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Invoice.MaxInputChars < 0 {
		return NewAppError("CONFIG_ERROR", "INVOICE_MAX_INPUT_CHARS must not be negative", ErrInvalidInput)
	}
	if c.Batch.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "BATCH_WORKERS must be at least 1", ErrInvalidInput)
	}
	if c.Batch.QueueSize < 1 {
		return NewAppError("CONFIG_ERROR", "BATCH_QUEUE_SIZE must be at least 1", ErrInvalidInput)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
