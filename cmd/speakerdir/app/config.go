package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/speakerdir/internal/server"
	"github.com/agentstation/speakerdir/pkg/constants"
	"github.com/agentstation/speakerdir/pkg/errors"
)

// configName is the config file name searched in $HOME and the working directory.
const configName = ".speakerdir"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file actually read, if any
	ConfigFile string

	// BaseDir is the executable's directory; relative paths from the
	// environment or config file resolve against it.
	BaseDir string

	// Database
	DBPath string

	// HTTP server
	Host        string
	Port        int
	StaticDir   string
	CacheTTL    time.Duration
	CORSOrigins []string

	// Logging configuration. LogLevel is set by --log-level only;
	// EnvLogLevel comes from LOG_LEVEL or the config file.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or ~/.speakerdir.yaml, or ./.speakerdir.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	baseDir, err := executableDir()
	if err != nil {
		return nil, errors.NewConfigError("paths", "cannot locate executable", err)
	}

	return loadConfig(viper.New(), configFile, baseDir)
}

func loadConfig(v *viper.Viper, configFile, baseDir string) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; a missing explicit one is not.
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "cannot read config file", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),
		BaseDir:    baseDir,

		DBPath: ResolvePath(baseDir, v.GetString("db_path")),

		Host:        v.GetString("host"),
		Port:        v.GetInt("port"),
		StaticDir:   ResolvePath(baseDir, v.GetString("static_dir")),
		CacheTTL:    v.GetDuration("cache_ttl"),
		CORSOrigins: splitList(v.GetString("cors_origins")),

		EnvLogLevel: v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}

	if config.Port < 0 || config.Port > 65535 {
		return nil, errors.NewConfigError("config", "PORT out of range", nil)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", constants.DefaultHost)
	v.SetDefault("port", constants.DefaultPort)
	v.SetDefault("db_path", constants.DefaultDBFile)
	v.SetDefault("static_dir", ".")
	v.SetDefault("cache_ttl", time.Duration(0))
	v.SetDefault("cors_origins", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars. Empty
// values and false booleans leave the loaded value alone.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, dbPath string) error {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if dbPath != "" {
		// Flag paths are relative to the working directory.
		abs, err := filepath.Abs(dbPath)
		if err != nil {
			return errors.WrapIO("resolve", dbPath, err)
		}
		c.DBPath = abs
	}
	return nil
}

// ServerConfig returns the HTTP server configuration derived from c.
func (c *Config) ServerConfig() server.Config {
	cfg := server.DefaultConfig()
	cfg.Host = c.Host
	cfg.Port = c.Port
	cfg.StaticDir = c.StaticDir
	cfg.CacheTTL = c.CacheTTL
	cfg.CORSOrigins = c.CORSOrigins
	return cfg
}

// ResolvePath returns p unchanged when absolute, otherwise joined to base.
func ResolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// executableDir returns the directory holding the running binary.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		// godotenv.Load never overrides variables that are already set,
		// so the first file to define a key wins.
		_ = godotenv.Load(envFile)
	}
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
