package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the top-level cmdtrack configuration. It is constructed once
// by Load and passed explicitly into constructors; there is no process-wide
// configuration singleton.
type Config struct {
	DataDir       string `mapstructure:"data_dir" validate:"required"`
	HistoryFile   string `mapstructure:"history_file" validate:"required"`
	ArchiveFile   string `mapstructure:"archive_file" validate:"required"`
	ArchivePruned bool   `mapstructure:"archive_pruned"`
	RetentionDays int    `mapstructure:"retention_days" validate:"min=1"`
	SimilarLimit  int    `mapstructure:"similar_limit" validate:"min=1,max=50"`
	Output        Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width" validate:"min=40"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a validated Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("history_file", DefaultHistoryFile)
	v.SetDefault("archive_file", DefaultArchiveFile)
	v.SetDefault("archive_pruned", DefaultArchivePruned)
	v.SetDefault("retention_days", DefaultRetentionDays)
	v.SetDefault("similar_limit", DefaultSimilarLimit)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultDataDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// HistoryPath returns the full path to the JSON history document.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, c.HistoryFile)
}

// ArchivePath returns the full path to the SQLite archive database.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.DataDir, c.ArchiveFile)
}
