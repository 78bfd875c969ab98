/*
Package config manages the TOML config for beedazzle.

Values are resolved in layers: built-in defaults, then the config file, then
whatever sections survive a partial parse when the file is malformed. Config
problems never stop the program; they are logged and defaults are used.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/beedazzle/internal/utils"
	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Search SearchConfig `toml:"search"`
	CLI    CliConfig    `toml:"cli"`
	Log    LogConfig    `toml:"log"`
}

// DictConfig holds dictionary file options.
type DictConfig struct {
	SnapshotPath  string `toml:"snapshot_path"`
	WordListPath  string `toml:"wordlist_path"`
	MinWordLength int    `toml:"min_word_length"`
}

// SearchConfig bounds the fuzzy search.
type SearchConfig struct {
	MaxEditBudget     int `toml:"max_edit_budget"`
	DefaultEditBudget int `toml:"default_edit_budget"`
}

// CliConfig holds interactive session options.
type CliConfig struct {
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

// LogConfig holds the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			SnapshotPath:  filepath.Join("data", "words.json"),
			WordListPath:  filepath.Join("data", "words_alpha.txt"),
			MinWordLength: 4,
		},
		Search: SearchConfig{
			MaxEditBudget:     2,
			DefaultEditBudget: 1,
		},
		CLI: CliConfig{
			HistoryFile: "",
			Color:       true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// GetConfigDir returns [UserConfigDir]/beedazzle, or the working dir when
// the platform has no config dir.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Warnf("Failed to get user config directory: %v", err)
		return os.Getwd()
	}
	return filepath.Join(configDir, "beedazzle"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/beedazzle/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps every key that decodes with the right type and
// defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		if val, ok := utils.ExtractString(section, "level"); ok {
			config.Log.Level = val
		}
	}
	config.normalize()
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "snapshot_path"); ok {
		dict.SnapshotPath = val
	}
	if val, ok := utils.ExtractString(data, "wordlist_path"); ok {
		dict.WordListPath = val
	}
	if val, ok := utils.ExtractInt64(data, "min_word_length"); ok {
		dict.MinWordLength = val
	}
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "max_edit_budget"); ok {
		search.MaxEditBudget = val
	}
	if val, ok := utils.ExtractInt64(data, "default_edit_budget"); ok {
		search.DefaultEditBudget = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "history_file"); ok {
		cli.HistoryFile = val
	}
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
}

// normalize clamps values the rest of the program relies on.
func (c *Config) normalize() {
	if c.Dict.MinWordLength < 1 {
		log.Warnf("min_word_length %d is invalid, using 1", c.Dict.MinWordLength)
		c.Dict.MinWordLength = 1
	}
	if c.Search.MaxEditBudget < 0 {
		c.Search.MaxEditBudget = 0
	}
	if c.Search.MaxEditBudget > trie.MaxEditBudget {
		log.Warnf("max_edit_budget %d exceeds %d, clamping", c.Search.MaxEditBudget, trie.MaxEditBudget)
		c.Search.MaxEditBudget = trie.MaxEditBudget
	}
	if c.Search.DefaultEditBudget < 0 {
		c.Search.DefaultEditBudget = 0
	}
	if c.Search.DefaultEditBudget > c.Search.MaxEditBudget {
		c.Search.DefaultEditBudget = c.Search.MaxEditBudget
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
