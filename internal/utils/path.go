package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FileCandidates lists where a user supplied file name is looked up, in order:
// as given (absolute or relative to the working dir), next to the executable,
// one level above it, then inside configDir.
func FileCandidates(name, configDir string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}

	candidates := []string{name}
	if execDir, err := GetExecutableDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(execDir, name),
			filepath.Join(filepath.Dir(execDir), name),
		)
	}
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, name))
	}
	return candidates
}

// ResolveFile returns the first regular file among FileCandidates.
func ResolveFile(name, configDir string) (string, error) {
	candidates := FileCandidates(name, configDir)
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		log.Debugf("Resolved %s to %s", name, candidate)
		return candidate, nil
	}
	return "", fmt.Errorf("%s not found in %v: %w", name, candidates, os.ErrNotExist)
}
