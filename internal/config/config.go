package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ThemeConfig holds TUI color overrides on top of a named preset.
type ThemeConfig struct {
	Preset     string `mapstructure:"preset"`
	Primary    string `mapstructure:"primary"`
	Secondary  string `mapstructure:"secondary"`
	Accent     string `mapstructure:"accent"`
	Muted      string `mapstructure:"muted"`
	Danger     string `mapstructure:"danger"`
	Background string `mapstructure:"background"`
	// MarkdownStyle is the glamour style used by list --render.
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config holds the application configuration.
type Config struct {
	Storage       string      `mapstructure:"storage"`
	DataDir       string      `mapstructure:"data_dir"`
	JournalFile   string      `mapstructure:"journal_file"`
	DiagnosisFile string      `mapstructure:"diagnosis_file"`
	Editor        string      `mapstructure:"editor"`
	MaxWidth      int         `mapstructure:"max_width"`
	Theme         ThemeConfig `mapstructure:"theme"`
	Log           LogConfig   `mapstructure:"log"`
}

// DefaultDataDir returns the default data directory (~/.moodtrack/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".moodtrack")
	}
	return filepath.Join(home, ".moodtrack")
}

// Load reads configuration from file, environment variables, and defaults.
// A .env file in the working directory is loaded into the environment first.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("storage", "csv")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("journal_file", "mood_journal.csv")
	v.SetDefault("diagnosis_file", "medical_diagnosis.csv")
	v.SetDefault("editor", "")
	v.SetDefault("max_width", 100)
	v.SetDefault("theme.preset", "dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.secondary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "moodtrack.log")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "moodtrack"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODTRACK_STORAGE, MOODTRACK_DATA_DIR, MOODTRACK_LOG_LEVEL, etc.
	v.SetEnvPrefix("MOODTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// JournalPath returns the mood journal file location. Relative names are
// resolved against the data directory.
func (c *Config) JournalPath() string {
	return c.resolve(c.JournalFile)
}

// DiagnosisPath returns the medical diagnosis file location.
func (c *Config) DiagnosisPath() string {
	return c.resolve(c.DiagnosisFile)
}

// LogPath returns the log file location, or "" when file logging is off.
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	return c.resolve(c.Log.File)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
