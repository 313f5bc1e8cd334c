package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv       = "SIDEKICK_CONFIG"
	logLevelEnv         = "SIDEKICK_LOG_LEVEL"
	logFileEnv          = "SIDEKICK_LOG_FILE"
	engineEnv           = "SIDEKICK_ENGINE"
	summarySentencesEnv = "SIDEKICK_SUMMARY_SENTENCES"
	remoteEndpointEnv   = "SIDEKICK_REMOTE_ENDPOINT"
	remoteAPIKeyEnv     = "SIDEKICK_REMOTE_API_KEY"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Remote  RemoteConfig  `yaml:"remote"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig controls slog level and the optional rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
}

// EngineConfig selects the analysis strategy and the length gates applied before it runs.
type EngineConfig struct {
	Strategy         string `yaml:"strategy" validate:"required,oneof=local remote"`
	SummarySentences int    `yaml:"summarySentences" validate:"gte=1"`
	// Documents with this many words or fewer are not summarized.
	MinSummaryWords int `yaml:"minSummaryWords" validate:"gte=0"`
	// Drafts shorter than this are not grammar-checked.
	MinGrammarWords int `yaml:"minGrammarWords" validate:"gte=0"`
}

// RemoteConfig describes the text-analysis service used by the remote strategy.
type RemoteConfig struct {
	Endpoint       string `yaml:"endpoint" validate:"omitempty,url"`
	APIKey         string `yaml:"apiKey"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"gte=0"`
}

// Timeout converts TimeoutSeconds to a duration.
func (r RemoteConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Style string `yaml:"style" validate:"oneof=auto plain box"`
	Width int    `yaml:"width" validate:"gte=20"`
}

// Load reads .env and YAML configuration (if present) and applies environment
// overrides. An empty path falls back to $SIDEKICK_CONFIG.
func Load(path string) Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, raw, path)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Validate checks field constraints and cross-field requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Engine.Strategy == "remote" && c.Remote.Endpoint == "" {
		return errors.New("invalid config: remote strategy requires remote.endpoint")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(logFileEnv); v != "" {
		c.Logging.File = v
	}

	if v := os.Getenv(engineEnv); v != "" {
		c.Engine.Strategy = v
	}

	if v := os.Getenv(summarySentencesEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.SummarySentences = n
		} else {
			log.Printf("config: ignoring %s=%q: %v", summarySentencesEnv, v, err)
		}
	}

	if v := os.Getenv(remoteEndpointEnv); v != "" {
		c.Remote.Endpoint = v
	}

	if v := os.Getenv(remoteAPIKeyEnv); v != "" {
		c.Remote.APIKey = v
	}
}

// mergeConfig decodes the file on top of base, so keys absent from the file keep their defaults.
func mergeConfig(base Config, raw []byte, path string) Config {
	merged := base
	if err := yaml.Unmarshal(raw, &merged); err != nil {
		log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		return base
	}
	return merged
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Engine: EngineConfig{
			Strategy:         "local",
			SummarySentences: 5,
			MinSummaryWords:  400,
			MinGrammarWords:  40,
		},
		Remote: RemoteConfig{
			Endpoint:       "",
			TimeoutSeconds: 15,
		},
		Output: OutputConfig{
			Style: "auto",
			Width: 60,
		},
	}
}
