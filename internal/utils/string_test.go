package utils

import (
	"testing"
)

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"123", false},
		{"cat", true},
		{"ca t", true},
		{"word2vec", true},
		{"café", true},
		{"tab\there", false},
		{"esc\x1b[A", false},
	}

	for _, tc := range testCases {
		if got := IsValidInput(tc.input); got != tc.want {
			t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2738, "2,738"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestExtractHelpers(t *testing.T) {
	data := map[string]any{
		"limit":  int64(7),
		"format": "json",
		"flag":   true,
		"nested": map[string]any{"k": "v"},
	}

	if v, ok := ExtractInt64(data, "limit"); !ok || v != 7 {
		t.Errorf("ExtractInt64 = %d, %v", v, ok)
	}
	if _, ok := ExtractInt64(data, "format"); ok {
		t.Error("ExtractInt64 accepted a string")
	}
	if v, ok := ExtractString(data, "format"); !ok || v != "json" {
		t.Errorf("ExtractString = %q, %v", v, ok)
	}
	if v, ok := ExtractBool(data, "flag"); !ok || !v {
		t.Errorf("ExtractBool = %v, %v", v, ok)
	}
	if _, ok := ExtractSection(data, "nested"); !ok {
		t.Error("ExtractSection missed a table")
	}
	if _, ok := ExtractSection(data, "limit"); ok {
		t.Error("ExtractSection accepted a scalar")
	}
}
