package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "patricia", cfg.Index.Backend)
	assert.Equal(t, suggest.DefaultLimit, cfg.Query.Limit)
	assert.Equal(t, "always", cfg.Query.Policy)
	assert.Equal(t, "msgpack", cfg.Server.Format)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), reloaded)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[index]
backend = "radix"

[query]
limit = 50
policy = "over_limit"

[server]
format = "json"
max_query = 32

[cli]
min_len = 2
max_len = 10
no_filter = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Index:  IndexConfig{Backend: "radix"},
		Query:  QueryConfig{Limit: 50, Policy: "over_limit"},
		Server: ServerConfig{Format: "json", MaxQuery: 32},
		CLI:    CliConfig{MinLen: 2, MaxLen: 10, NoFilter: true},
	}, cfg)
}

func TestLoadConfigMissingKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, "[query]\nlimit = 10\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Query.Limit)
	assert.Equal(t, "always", cfg.Query.Policy)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
}

func TestLoadConfigInvalidSectionFallsBack(t *testing.T) {
	path := writeConfig(t, `
[index]
backend = "btree"

[query]
limit = 0

[server]
format = "json"

[cli]
min_len = 5
max_len = 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Index, cfg.Index)
	assert.Equal(t, defaults.Query, cfg.Query)
	assert.Equal(t, "json", cfg.Server.Format)
	assert.Equal(t, defaults.CLI, cfg.CLI)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// limit has the wrong type, so strict decoding fails; the rest survives
	path := writeConfig(t, `
[query]
limit = "lots"
policy = "over_limit"

[server]
format = "json"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, suggest.DefaultLimit, cfg.Query.Limit)
	assert.Equal(t, "over_limit", cfg.Query.Policy)
	assert.Equal(t, "json", cfg.Server.Format)
}

func TestLoadConfigSyntaxErrorUsesDefaults(t *testing.T) {
	path := writeConfig(t, "[query\nlimit = ")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[index]\nbackend = \"radix\"\n")

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "radix", cfg.Index.Backend)
}

func TestIndexOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Index.Backend = "radix"
	cfg.Query.Limit = 2
	cfg.Query.Policy = "over_limit"

	idx, err := suggest.Build([]string{"aa", "ab", "ac"}, cfg.IndexOptions()...)
	require.NoError(t, err)
	assert.Equal(t, suggest.Options{
		Backend: suggest.BackendRadix,
		Limit:   2,
		Policy:  suggest.PolicyFilterOverLimit,
	}, idx.Options())
}

func TestGetActiveConfigPath(t *testing.T) {
	assert.Equal(t, "builtin defaults", GetActiveConfigPath(""))

	abs := filepath.Join(t.TempDir(), "config.toml")
	assert.Equal(t, abs, GetActiveConfigPath(abs))
}
