package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveFile(t *testing.T) {
	configDir := t.TempDir()
	inConfig := filepath.Join(configDir, "prose.words")
	if err := os.WriteFile(inConfig, []byte("cat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveFile("prose.words", configDir)
	if err != nil {
		t.Fatalf("ResolveFile: %v", err)
	}
	if got != inConfig {
		t.Errorf("ResolveFile = %q, want %q", got, inConfig)
	}

	got, err = ResolveFile(inConfig, "")
	if err != nil || got != inConfig {
		t.Errorf("ResolveFile(abs) = %q, %v", got, err)
	}

	if _, err := ResolveFile("missing.words", configDir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveFile(missing) error = %v, want ErrNotExist", err)
	}

	// directories are never a match
	if err := os.Mkdir(filepath.Join(configDir, "dir.words"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := ResolveFile("dir.words", configDir); err == nil {
		t.Error("ResolveFile matched a directory")
	}
}

func TestSaveTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := map[string]any{"query": map[string]any{"limit": 10}}

	if err := SaveTOMLFile(data, path); err != nil {
		t.Fatalf("SaveTOMLFile: %v", err)
	}

	tree, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery: %v", err)
	}
	section, ok := ExtractSection(tree, "query")
	if !ok {
		t.Fatal("query section missing")
	}
	if v, ok := ExtractInt64(section, "limit"); !ok || v != 10 {
		t.Errorf("limit = %d, %v", v, ok)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	result := CheckDirStatus(dir)
	if !result.Exists || !result.Writable || result.Error != nil {
		t.Errorf("CheckDirStatus = %+v", result)
	}
	if !FileExists(dir) {
		t.Error("directory was not created")
	}
}
