package config

import (
	"errors"
	"fmt"
	"graphdb/logger"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DefaultPaths struct {
	ConfigDir  string
	LogPathApp string
	DBPath     string
	LogLevel   string
}

type Configuration struct {
	Database struct {
		Backend string `mapstructure:"backend"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"database"`
	Neo4j struct {
		URI      string `mapstructure:"uri"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		Database string `mapstructure:"database"`
	} `mapstructure:"neo4j"`
	Server struct {
		Port         string `mapstructure:"port"`
		BaseURI      string `mapstructure:"base_uri"`
		LogPath      string `mapstructure:"log_path"`
		MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	} `mapstructure:"server"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
	Graph struct {
		// MissingEndpointPrecedence picks the outcome reported when both
		// endpoints are missing or an endpoint vanishes mid-transaction.
		MissingEndpointPrecedence string `mapstructure:"missing_endpoint_precedence"`
	} `mapstructure:"graph"`
}

const (
	BackendSQLite = "sqlite"
	BackendNeo4j  = "neo4j"
)

var AppConfig Configuration

func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	expanded, err := expandTilde(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in '%s': %v. Using original path.\n", path, err)
		return path
	}
	return expanded
}

func GetDefaultConfigPaths() DefaultPaths {
	var paths DefaultPaths
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not get user config dir: %v. Using current directory.\n", err)
		userConfigDir = "."
	}

	paths.ConfigDir = filepath.Join(userConfigDir, "graphdb")
	paths.LogPathApp = filepath.Join(paths.ConfigDir, "logs", "app.log")
	paths.DBPath = filepath.Join(paths.ConfigDir, "graph.db")
	paths.LogLevel = "INFO"
	return paths
}

// newViper returns a viper instance carrying every default.
func newViper() *viper.Viper {
	v := viper.New()
	defaults := GetDefaultConfigPaths()
	v.SetDefault("database.backend", BackendSQLite)
	v.SetDefault("database.path", defaults.DBPath)
	v.SetDefault("neo4j.uri", "neo4j://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("neo4j.database", "")
	v.SetDefault("server.port", "7474")
	v.SetDefault("server.base_uri", "")
	v.SetDefault("server.log_path", defaults.LogPathApp)
	v.SetDefault("server.max_body_bytes", int64(1<<20))
	v.SetDefault("logging.level", defaults.LogLevel)
	v.SetDefault("graph.missing_endpoint_precedence", "start")

	v.SetEnvPrefix("GRAPHDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from defaults, an optional YAML file and the
// environment without touching loggers or the filesystem beyond reading.
func Load(cfgFile string) (Configuration, string, error) {
	var cfg Configuration

	// A missing .env is normal; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: Could not load .env file: %v\n", err)
	}

	v := newViper()
	defaults := GetDefaultConfigPaths()
	if cfgFile != "" {
		v.SetConfigFile(ExpandTilde(cfgFile))
		v.SetConfigType("yaml")
	} else {
		v.AddConfigPath(defaults.ConfigDir)
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	configUsedMsg := "Using default/environment configuration."
	if err := v.ReadInConfig(); err == nil {
		configUsedMsg = fmt.Sprintf("Using config file: %s", v.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return cfg, "", fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}

	cfg.Database.Backend = strings.ToLower(strings.TrimSpace(cfg.Database.Backend))
	cfg.Database.Path = ExpandTilde(cfg.Database.Path)
	cfg.Server.LogPath = ExpandTilde(cfg.Server.LogPath)
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Server.BaseURI != "" && !strings.HasSuffix(cfg.Server.BaseURI, "/") {
		cfg.Server.BaseURI += "/"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, configUsedMsg, nil
}

// Validate checks values that have a closed set of options.
func (c Configuration) Validate() error {
	switch c.Database.Backend {
	case BackendSQLite, BackendNeo4j:
	default:
		return fmt.Errorf("unknown database.backend %q (want %q or %q)", c.Database.Backend, BackendSQLite, BackendNeo4j)
	}
	switch strings.ToLower(c.Graph.MissingEndpointPrecedence) {
	case "start", "end":
	default:
		return fmt.Errorf("unknown graph.missing_endpoint_precedence %q (want \"start\" or \"end\")", c.Graph.MissingEndpointPrecedence)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// Init loads the configuration into AppConfig, applies flag overrides and
// initializes the global logger.
func Init(cfgFile string, flagAppLogPath, flagLogLevel string) error {
	cfg, configUsedMsg, err := Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: %v\n", err)
		return err
	}

	if flagAppLogPath != "" {
		cfg.Server.LogPath = ExpandTilde(flagAppLogPath)
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = strings.ToUpper(flagLogLevel)
	}
	AppConfig = cfg

	if err := logger.InitGlobalLoggers(AppConfig.Server.LogPath, AppConfig.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to initialize global loggers with final config: %v\n", err)
		return fmt.Errorf("failed to initialize global loggers with final config: %w", err)
	}

	logger.Info("%s", configUsedMsg)
	if flagAppLogPath != "" || flagLogLevel != "" {
		logger.Info("Log path/level flags may have overridden config file/defaults.")
	}
	logger.Info("Graph backend: %s", AppConfig.Database.Backend)
	if AppConfig.Server.BaseURI == "" {
		logger.Info("server.base_uri not set; representation links will be derived from each request.")
	}
	logger.Debug("Final AppConfig Initialized: %+v", redacted(AppConfig))
	return nil
}

func redacted(c Configuration) Configuration {
	if c.Neo4j.Password != "" {
		c.Neo4j.Password = "***"
	}
	return c
}
