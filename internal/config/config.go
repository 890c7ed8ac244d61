package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string    `mapstructure:"env" validate:"required"` // current application environment (local, dev, production etc)
	Questions Questions `mapstructure:"questions"`               // question bank location
	Quiz      Quiz      `mapstructure:"quiz"`                    // exam assembly parameters
	UI        UI        `mapstructure:"ui"`                      // terminal front end options
	DB        DB        `mapstructure:"database"`                // database configuration section
}

// Questions selects where the question bank is read from.
type Questions struct {
	Source string `mapstructure:"source" validate:"oneof=file postgres"` // "file" or "postgres"
	Path   string `mapstructure:"path" validate:"required"`              // delimited question file
}

// Quiz contains exam assembly parameters.
type Quiz struct {
	TargetCount int   `mapstructure:"target_count" validate:"min=1"` // wanted number of questions
	Stratify    bool  `mapstructure:"stratify"`                      // balance questions across categories
	Seed        int64 `mapstructure:"seed"`                          // random seed, 0 seeds from the clock
}

// UI contains terminal front end options.
type UI struct {
	TimerInTitle bool `mapstructure:"timer_in_title"` // refresh elapsed time in the terminal title
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                                // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"min=1"` // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`                // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPath string) (*Config, error) {
	// Pick up a local .env file if there is one; real environment wins.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions.source", SourceFile)
	v.SetDefault("questions.path", "assets/questions.txt")
	v.SetDefault("quiz.target_count", 1000)
	v.SetDefault("quiz.stratify", true)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("ui.timer_in_title", true)
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("questions.path", "QUESTIONS_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.DB.URL = v.GetString("database_url")
	if cfg.Questions.Source == SourcePostgres && cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
