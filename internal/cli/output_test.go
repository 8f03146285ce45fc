package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFunctions(t *testing.T) {
	orig := colorEnabled
	defer SetColorEnabled(orig)

	SetColorEnabled(true)
	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))

	SetColorEnabled(false)
	assert.Equal(t, "ok", Green("ok"))
}

func TestStatusMarker(t *testing.T) {
	orig := colorEnabled
	defer SetColorEnabled(orig)

	SetColorEnabled(false)
	assert.Equal(t, "[x]", StatusMarker(true))
	assert.Equal(t, "[ ]", StatusMarker(false))

	SetColorEnabled(true)
	assert.Equal(t, Green("[x]"), StatusMarker(true))
	assert.Equal(t, "[ ]", StatusMarker(false))
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer f.Close()
		assert.False(t, IsTerminal(f))
	}
}
