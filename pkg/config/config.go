/*
Package config manages TOML config for the typomatch engine and server.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/typomatch/internal/utils"
	"github.com/bastiangx/typomatch/pkg/complete"
	"github.com/bastiangx/typomatch/pkg/match"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Match  MatchConfig  `toml:"match"`
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
}

// MatchConfig has the matching policy options.
type MatchConfig struct {
	// TypoLevel is a fixed edit budget; 0 scales the budget with the
	// square root of the input length instead.
	TypoLevel      int  `toml:"typo_level"`
	ShrinkBound    int  `toml:"shrink_bound"`
	ExpandBound    int  `toml:"expand_bound"`
	AllCompletions bool `toml:"all_completions"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MinInput     int  `toml:"min_input"`
	MaxInput     int  `toml:"max_input"`
	EnableFilter bool `toml:"enable_filter"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Match: MatchConfig{
			TypoLevel:      0,
			ShrinkBound:    1,
			ExpandBound:    4,
			AllCompletions: true,
		},
		Server: ServerConfig{
			MinInput:     1,
			MaxInput:     60,
			EnableFilter: true,
		},
		Dict: DictConfig{
			Path: "data/dict.bin",
		},
	}
}

// MatchOptions maps the [match] section onto engine options.
func (c *Config) MatchOptions() complete.Options {
	opts := complete.DefaultOptions()
	if c.Match.TypoLevel > 0 {
		opts.Level = match.FixedLevel(c.Match.TypoLevel)
	}
	opts.ShrinkBound = c.Match.ShrinkBound
	opts.ExpandBound = c.Match.ExpandBound
	opts.AllCompletions = c.Match.AllCompletions
	return opts
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/typomatch
// 2. ~/Library/Application Support/typomatch (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "typomatch")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "typomatch")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
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
// 2. Default path: [UserConfigDir]/typomatch/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
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

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections still parse
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if matchSection, ok := utils.ExtractSection(tempConfig, "match"); ok {
		extractMatchConfig(matchSection, &config.Match)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if val, ok := dictSection["path"].(string); ok {
			config.Dict.Path = val
		}
	}
	return config, nil
}

// extractMatchConfig extracts match configuration from a map
func extractMatchConfig(data map[string]any, m *MatchConfig) {
	if val, ok := utils.ExtractInt64(data, "typo_level"); ok {
		m.TypoLevel = val
	}
	if val, ok := utils.ExtractInt64(data, "shrink_bound"); ok {
		m.ShrinkBound = val
	}
	if val, ok := utils.ExtractInt64(data, "expand_bound"); ok {
		m.ExpandBound = val
	}
	if val, ok := utils.ExtractBool(data, "all_completions"); ok {
		m.AllCompletions = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "min_input"); ok {
		server.MinInput = val
	}
	if val, ok := utils.ExtractInt64(data, "max_input"); ok {
		server.MaxInput = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the match settings and saves to file. Nil fields are left
// untouched.
func (c *Config) Update(configPath string, typoLevel, shrinkBound, expandBound *int, allCompletions *bool) error {
	m := &c.Match
	if typoLevel != nil {
		m.TypoLevel = *typoLevel
	}
	if shrinkBound != nil {
		m.ShrinkBound = *shrinkBound
	}
	if expandBound != nil {
		m.ExpandBound = *expandBound
	}
	if allCompletions != nil {
		m.AllCompletions = *allCompletions
	}
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
