package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, input string, noFilter bool) (*InputHandler, *bytes.Buffer) {
	t.Helper()
	idx, err := suggest.Build([]string{"cat", "car", "cart", "dog", "42nd"})
	require.NoError(t, err)

	var out bytes.Buffer
	h := NewInputHandler(idx.Lookup, 2, 8, noFilter).WithIO(strings.NewReader(input), &out)
	return h, &out
}

func TestInputHandlerSession(t *testing.T) {
	h, out := newTestHandler(t, "ca\n\nc\nverylongquery\n1234\nzzz\ndo", false)

	require.NoError(t, h.Start())
	assert.Equal(t, 6, h.Requests())

	text := out.String()
	assert.Contains(t, text, "Found 2 suggestions for prefix 'ca'")
	assert.Contains(t, text, "car")
	assert.Contains(t, text, "cat")
	assert.NotContains(t, text, "cart")
	assert.Contains(t, text, "Prefix too short: c")
	assert.Contains(t, text, "Prefix too long: verylongquery")
	assert.Contains(t, text, "No results found for prefix: '1234'")
	assert.Contains(t, text, "No suggestions found for prefix: 'zzz'")
	assert.Contains(t, text, "Found 1 suggestions for prefix 'do'")
}

func TestInputHandlerNoFilter(t *testing.T) {
	h, out := newTestHandler(t, "42\n", true)

	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "42nd")
}

func TestInputHandlerLookupError(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(func(string) ([]string, error) {
		return nil, suggest.ErrIndexUnavailable
	}, 1, 8, false).WithIO(strings.NewReader("ca\n"), &out)

	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), suggest.ErrIndexUnavailable.Error())
}
