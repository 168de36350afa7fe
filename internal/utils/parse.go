package utils

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes configPath into config. Keys the struct does not know
// are reported and otherwise ignored.
func LoadTOMLFile(configPath string, config any) error {
	md, err := toml.DecodeFile(configPath, config)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), configPath)
	}
	return nil
}

// ParseTOMLWithRecovery decodes configPath into a generic tree, so sections
// can be salvaged one key at a time when the typed decode fails.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	tree := make(map[string]any)
	if _, err := toml.DecodeFile(configPath, &tree); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}
	return tree, nil
}

// ExtractSection returns a table of the parsed tree.
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 reads an integer key. TOML integers decode as int64.
func ExtractInt64(data map[string]any, key string) (int, bool) {
	val, ok := data[key].(int64)
	return int(val), ok
}

func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}

func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}
