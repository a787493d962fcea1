package configs

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/i2y/acapyclient/pkg/client"
)

// EnvPrefix is the prefix of every environment variable Load reads.
const EnvPrefix = "acapy"

// FileConfig defines the structure loaded from the YAML profile.
type FileConfig struct {
	AdminURL string            `yaml:"admin_url"`
	APIKey   string            `yaml:"api_key"`
	Headers  map[string]string `yaml:"headers"`
	Cookies  map[string]string `yaml:"cookies"`
}

// Config holds the final configuration, merged from the profile file and
// environment variables prefixed with ACAPY_. Environment wins.
type Config struct {
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// Loaded from FileConfig only.
	Headers map[string]string `ignored:"true"`
	Cookies map[string]string `ignored:"true"`

	AdminURL                 string        `envconfig:"ADMIN_URL" default:"http://localhost:8031"`
	PeerAdminURL             string        `envconfig:"PEER_ADMIN_URL"`
	APIKey                   string        `envconfig:"API_KEY"`
	Timeout                  time.Duration `envconfig:"TIMEOUT" default:"30s"`
	RaiseOnUnexpectedStatus  bool          `envconfig:"RAISE_ON_UNEXPECTED_STATUS" default:"false"`
	SwaggerPath              string        `envconfig:"SWAGGER_PATH" default:"/api/docs/swagger.json"`
	ListenAddr               string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminListenAddr          string        `envconfig:"ADMIN_LISTEN_ADDR" default:":8081"`
	ShutdownTimeout          time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	OtelExporterOtlpEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile                  string        `envconfig:"LOG_FILE" default:"/tmp/acapy-mcp.log"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// SwaggerURL is the location of the agent's API document.
func (c *Config) SwaggerURL() string {
	return strings.TrimRight(c.AdminURL, "/") + c.SwaggerPath
}

// ClientOptions maps the configuration onto admin API client options.
func (c *Config) ClientOptions(logger *slog.Logger) []client.Option {
	opts := []client.Option{
		client.WithTimeout(c.Timeout),
		client.WithRaiseOnUnexpectedStatus(c.RaiseOnUnexpectedStatus),
	}
	if len(c.Headers) > 0 {
		opts = append(opts, client.WithHeaders(c.Headers))
	}
	if c.APIKey != "" {
		opts = append(opts, client.WithAPIKey(c.APIKey))
	}
	for name, value := range c.Cookies {
		opts = append(opts, client.WithCookie(&http.Cookie{Name: name, Value: value}))
	}
	if logger != nil {
		opts = append(opts, client.WithLogger(logger))
	}
	return opts
}

// Load loads configuration first from environment variables (to get the file
// path), then from the YAML profile, and finally applies environment
// overrides again.
func Load() (*Config, error) {
	var initialCfg Config
	if err := envconfig.Process(EnvPrefix, &initialCfg); err != nil {
		return nil, fmt.Errorf("failed to process initial environment variables: %w", err)
	}

	fileCfg := FileConfig{}
	if initialCfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(initialCfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		slog.Debug("Loaded configuration from file.", "path", initialCfg.ConfigFilePath)
	}

	finalCfg := initialCfg
	finalCfg.Headers = fileCfg.Headers
	finalCfg.Cookies = fileCfg.Cookies

	if err := envconfig.Process(EnvPrefix, &finalCfg); err != nil {
		return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
	}

	// Profile values only fill settings the environment leaves unset.
	if _, ok := lookupEnv("ADMIN_URL"); !ok && fileCfg.AdminURL != "" {
		finalCfg.AdminURL = fileCfg.AdminURL
	}
	if _, ok := lookupEnv("API_KEY"); !ok && fileCfg.APIKey != "" {
		finalCfg.APIKey = fileCfg.APIKey
	}

	return &finalCfg, nil
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(strings.ToUpper(EnvPrefix) + "_" + key)
}
