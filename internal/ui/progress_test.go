package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Downloading")

	n, err := s.Write([]byte("  % Total    % Received\n"))
	assert.NoError(t, err)
	assert.Equal(t, 24, n)

	_, _ = s.Write([]byte("100  1024"))
	assert.NoError(t, s.Finish())
	assert.Contains(t, buf.String(), "Downloading")
}

func TestIsInteractive_NonFile(t *testing.T) {
	old := Stderr
	t.Cleanup(func() { Stderr = old })

	Stderr = &bytes.Buffer{}
	assert.False(t, IsInteractive())
}
