package app

import (
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Dashboard API
	BaseURL      string
	Campus       string
	Timeout      time.Duration
	CacheTTL     time.Duration
	RegistryFile string

	// Session
	Username string
	Password string
	Keypass  string

	// Logging configuration
	LogLevel    string // --log-level flag only
	EnvLogLevel string // ENTITYMAP_LOG_LEVEL or LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// newViper creates a viper instance with entitymap's env and default
// settings. Keys use underscores; ENTITYMAP_BASE_URL maps to base_url.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("campus", constants.DefaultCampus)
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("cache_ttl", constants.CacheTTL)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	_ = v.BindEnv("env_log_level", constants.EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")

	return v
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (bound to v by the root command)
// 2. Environment variables (ENTITYMAP_*)
// 3. .env files
// 4. Config file (~/.entitymap.yaml or --config)
// 5. Defaults
//
// A missing default config file is fine; an explicit one must exist.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config file "+configFile, "cannot read config file", err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigError("config file", "cannot read config file", err)
			}
		}
	}

	return fromViper(v), nil
}

// fromViper snapshots v into a Config.
func fromViper(v *viper.Viper) *Config {
	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		BaseURL:      v.GetString("base_url"),
		Campus:       v.GetString("campus"),
		Timeout:      v.GetDuration("timeout"),
		CacheTTL:     v.GetDuration("cache_ttl"),
		RegistryFile: v.GetString("registry_file"),

		Username: v.GetString("username"),
		Password: v.GetString("password"),
		Keypass:  v.GetString("keypass"),

		EnvLogLevel: v.GetString("env_log_level"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment win.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
