/*
Package config manages TOML config for prosecomplete.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/prosecomplete/internal/utils"
	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

// configValidate checks every section after decoding.
var configValidate = validator.New()

// Config holds the entire config structure
type Config struct {
	Index  IndexConfig  `toml:"index"`
	Query  QueryConfig  `toml:"query"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// IndexConfig selects how the prefix tree is stored.
type IndexConfig struct {
	Backend string `toml:"backend" validate:"oneof=patricia radix"`
}

// QueryConfig controls the limit policy applied to every lookup.
type QueryConfig struct {
	Limit  int    `toml:"limit" validate:"min=1"`
	Policy string `toml:"policy" validate:"oneof=always over_limit"`
}

// ServerConfig has IPC related options.
type ServerConfig struct {
	Format   string `toml:"format" validate:"oneof=msgpack json"`
	MaxQuery int    `toml:"max_query" validate:"min=1"`
}

// CliConfig holds repl options.
type CliConfig struct {
	MinLen   int  `toml:"min_len" validate:"min=0"`
	MaxLen   int  `toml:"max_len" validate:"min=1,gtefield=MinLen"`
	NoFilter bool `toml:"no_filter"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "prosecomplete")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "prosecomplete")
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
// 2. Default path: [UserConfigDir]/prosecomplete/config.toml
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

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Backend: string(suggest.BackendPatricia),
		},
		Query: QueryConfig{
			Limit:  suggest.DefaultLimit,
			Policy: string(suggest.PolicyFilterAlways),
		},
		Server: ServerConfig{
			Format:   "msgpack",
			MaxQuery: 256,
		},
		CLI: CliConfig{
			MinLen: 1,
			MaxLen: 64,
		},
	}
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
	config.Sanitize()
	return config, nil
}

// tryPartialParse keeps whatever keys of a broken TOML file still decode
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "index"); ok {
		extractIndexConfig(section, &config.Index)
	}
	if section, ok := utils.ExtractSection(tempConfig, "query"); ok {
		extractQueryConfig(section, &config.Query)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.Sanitize()
	return config, nil
}

func extractIndexConfig(data map[string]any, index *IndexConfig) {
	if val, ok := utils.ExtractString(data, "backend"); ok {
		index.Backend = val
	}
}

func extractQueryConfig(data map[string]any, query *QueryConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		query.Limit = val
	}
	if val, ok := utils.ExtractString(data, "policy"); ok {
		query.Policy = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "format"); ok {
		server.Format = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query"); ok {
		server.MaxQuery = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "min_len"); ok {
		cli.MinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_len"); ok {
		cli.MaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// Sanitize validates each section and resets the invalid ones to defaults.
func (c *Config) Sanitize() {
	defaults := DefaultConfig()
	if err := configValidate.Struct(&c.Index); err != nil {
		log.Warnf("Invalid [index] config: %v. Using defaults for this section.", err)
		c.Index = defaults.Index
	}
	if err := configValidate.Struct(&c.Query); err != nil {
		log.Warnf("Invalid [query] config: %v. Using defaults for this section.", err)
		c.Query = defaults.Query
	}
	if err := configValidate.Struct(&c.Server); err != nil {
		log.Warnf("Invalid [server] config: %v. Using defaults for this section.", err)
		c.Server = defaults.Server
	}
	if err := configValidate.Struct(&c.CLI); err != nil {
		log.Warnf("Invalid [cli] config: %v. Using defaults for this section.", err)
		c.CLI = defaults.CLI
	}
}

// Validate reports the first invalid field across all sections.
func (c *Config) Validate() error {
	return configValidate.Struct(c)
}

// IndexOptions maps the config onto index build options.
func (c *Config) IndexOptions() []suggest.Option {
	return []suggest.Option{
		suggest.WithBackend(suggest.Backend(c.Index.Backend)),
		suggest.WithLimit(c.Query.Limit),
		suggest.WithPolicy(suggest.Policy(c.Query.Policy)),
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
