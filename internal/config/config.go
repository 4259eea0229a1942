package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// DBHostEnv is the environment variable for MongoDB host.
	DBHostEnv = "DB_HOST"

	// DBPortEnv is the environment variable for MongoDB port.
	DBPortEnv = "DB_PORT"

	// DBUserEnv is the environment variable for MongoDB user.
	DBUserEnv = "DB_USER"

	// DBPassEnv is the environment variable for MongoDB password.
	DBPassEnv = "DB_PASS"

	// DBNameEnv is the environment variable for MongoDB database name.
	DBNameEnv = "DB_NAME"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for a custom AWS endpoint (LocalStack/MinIO).
	AWSEndpointEnv = "AWS_ENDPOINT"

	// S3BucketEnv is the environment variable for the image bucket name.
	S3BucketEnv = "S3_BUCKET"

	// ProductTopicEnv is the environment variable for the product events topic.
	ProductTopicEnv = "PRODUCT_TOPIC"

	// ToppingTopicEnv is the environment variable for the topping events topic.
	ToppingTopicEnv = "TOPPING_TOPIC"

	// JWTSecretEnv is the environment variable for the JWT signing secret.
	JWTSecretEnv = "JWT_SECRET"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the application configuration.
type Config struct {
	DebugMode     bool
	Database      DB
	HTTPServer    Server
	MetricsServer Server
	AWS           AWSConfig
	Broker        Broker
	Auth          Auth
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region   string
	Endpoint string
	S3Bucket string
}

// Broker holds the topics catalog change events are published to.
type Broker struct {
	ProductTopic string
	ToppingTopic string
}

// Auth holds authentication configuration settings.
type Auth struct {
	JWTSecret string
}

// DB represents MongoDB configuration settings.
type DB struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// URI builds the MongoDB connection string from the configured parts.
func (db DB) URI() string {
	if db.User != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", db.User, db.Password, db.Host, db.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", db.Host, db.Port)
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	// Validate database configuration
	if err := allNonEmpty(map[string]string{
		DBHostEnv: c.Database.Host,
		DBNameEnv: c.Database.Name,
	}); err != nil {
		return fmt.Errorf("database configuration incomplete: %w", err)
	}

	// Validate server ports
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}

	// Validate port numbers
	if err := allNumbers(map[string]string{
		DBPortEnv:            c.Database.Port,
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	// Validate AWS configuration
	if err := allNonEmpty(map[string]string{
		AWSRegionEnv: c.AWS.Region,
		S3BucketEnv:  c.AWS.S3Bucket,
	}); err != nil {
		return fmt.Errorf("AWS configuration incomplete: %w", err)
	}

	// Validate broker topics
	if err := allNonEmpty(map[string]string{
		ProductTopicEnv: c.Broker.ProductTopic,
		ToppingTopicEnv: c.Broker.ToppingTopic,
	}); err != nil {
		return fmt.Errorf("broker configuration incomplete: %w", err)
	}

	// Validate auth configuration
	if err := allNonEmpty(map[string]string{
		JWTSecretEnv: c.Auth.JWTSecret,
	}); err != nil {
		return fmt.Errorf("auth configuration incomplete: %w", err)
	}

	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		Database: DB{
			Host:     os.Getenv(DBHostEnv),
			User:     os.Getenv(DBUserEnv),
			Password: os.Getenv(DBPassEnv),
			Name:     os.Getenv(DBNameEnv),
			Port:     os.Getenv(DBPortEnv),
		},
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		AWS: AWSConfig{
			Region:   os.Getenv(AWSRegionEnv),
			Endpoint: os.Getenv(AWSEndpointEnv),
			S3Bucket: os.Getenv(S3BucketEnv),
		},
		Broker: Broker{
			ProductTopic: os.Getenv(ProductTopicEnv),
			ToppingTopic: os.Getenv(ToppingTopicEnv),
		},
		Auth: Auth{
			JWTSecret: os.Getenv(JWTSecretEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
