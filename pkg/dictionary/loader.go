// Package dictionary provides the vocabulary the index is built from: the word
// list compiled into the binary, or a plain text override for development.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// EmbeddedName is reported as the source of the built-in word list.
const EmbeddedName = "embedded"

// maxLineSize bounds a single vocabulary line.
const maxLineSize = 1 << 20

//go:embed words.txt
var embeddedWords string

// Embedded returns the built-in word list, one entry per line.
func Embedded() []string {
	lines, err := SplitLines(strings.NewReader(embeddedWords))
	if err != nil {
		// the resource is compiled in, a scan failure means a broken build
		panic(fmt.Sprintf("embedded word list: %v", err))
	}
	return lines
}

// SplitLines reads r line by line. Both "\n" and "\r\n" endings are accepted
// and a final line without a newline is kept. Lines are not otherwise trimmed.
func SplitLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to split lines: %w", err)
	}
	return lines, nil
}

// LoadTextFile reads a plain text word list from disk. Every line must be
// valid UTF-8 so the index never stores undecodable entries.
func LoadTextFile(filename string) ([]string, error) {
	if err := ValidateFileFormat(filename, FormatText); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", filename, err)
	}
	defer file.Close()

	lines, err := SplitLines(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", filename, err)
	}

	for i, line := range lines {
		if !utf8.ValidString(line) {
			return nil, &LineError{File: filename, Line: i + 1}
		}
	}

	log.Debugf("Loaded %d lines from %s", len(lines), filename)
	return lines, nil
}

// Load returns the vocabulary and a name for its source. An empty filename
// selects the embedded word list.
func Load(filename string) ([]string, string, error) {
	if filename == "" {
		return Embedded(), EmbeddedName, nil
	}
	lines, err := LoadTextFile(filename)
	if err != nil {
		return nil, "", err
	}
	return lines, filename, nil
}

// LineError reports a line that is not valid UTF-8.
type LineError struct {
	File string
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: line is not valid UTF-8", e.File, e.Line)
}
