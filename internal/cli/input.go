// Package cli handles cmd line input and completions for DBG and trying out dictionaries
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/prosecomplete/internal/logger"
	"github.com/bastiangx/prosecomplete/internal/utils"
	"github.com/charmbracelet/log"
)

// LookupFunc answers one completion query.
type LookupFunc func(query string) ([]string, error)

// InputHandler reads queries line by line and prints their completions.
// minimum and maximum prefix length and input filtering are applied before
// the lookup, the index itself applies its own limit and policy.
type InputHandler struct {
	lookup          LookupFunc
	reader          *bufio.Reader
	out             *log.Logger
	minPrefixLength int
	maxPrefixLength int
	requestCount    int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler on stdin/stderr
func NewInputHandler(lookup LookupFunc, minLength, maxLength int, noFilter bool) *InputHandler {
	return &InputHandler{
		lookup:          lookup,
		reader:          bufio.NewReader(os.Stdin),
		out:             logger.Plain(""),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		noFilter:        noFilter,
	}
}

// WithIO swaps the input and output streams.
func (h *InputHandler) WithIO(r io.Reader, w io.Writer) *InputHandler {
	h.reader = bufio.NewReader(r)
	h.out = logger.NewWithConfig(w, "", log.GetLevel(), false, false, log.TextFormatter)
	return h
}

// Start begins the interface loop.
// It reads one query per line until the input is closed (Ctrl+D), which
// ends the loop without error.
func (h *InputHandler) Start() error {
	h.out.Print("Prose-Complete CLI")
	h.out.Print("type something and press Enter to see the completions (Ctrl+D to exit):")

	for {
		line, err := h.reader.ReadString('\n')
		query := strings.TrimSpace(line)
		if query != "" {
			h.handleInput(query)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Requests returns how many queries were handled.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	if len(query) < h.minPrefixLength {
		h.out.Errorf("Prefix too short: %s", query)
		return
	}

	if len(query) > h.maxPrefixLength {
		h.out.Errorf("Prefix too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(query) {
			h.out.Infof("No results found for prefix: '%s'", query)
			return
		}
	}

	start := time.Now()
	results, err := h.lookup(query)
	elapsed := time.Since(start)
	if err != nil {
		h.out.Errorf("Lookup failed for '%s': %v", query, err)
		return
	}
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, query)

	if len(results) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", query)
		return
	}

	h.out.Printf("Found %s suggestions for prefix '%s':", utils.FormatWithCommas(len(results)), query)
	for i, word := range results {
		h.out.Print(fmt.Sprintf("%2d. \033[38;5;75m%s\033[0m", i+1, word))
	}
}
