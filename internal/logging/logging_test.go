package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathReturnsNil(t *testing.T) {
	l := New("", nil)
	assert.Nil(t, l)

	// Nil logger is safe to use.
	l.Logf("ignored %d", 1)
	l.LogError("ignored", errors.New("boom"))
	assert.NoError(t, l.Close())
}

func TestLogf_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refinery.log")
	l := New(path, nil)
	require.NotNil(t, l)

	l.Logf("session %s started", "abc")
	l.LogError("saving", errors.New("disk full"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session abc started")
	assert.Contains(t, string(data), "ERROR saving: disk full")
}

func TestNew_EchoOnly(t *testing.T) {
	var buf bytes.Buffer
	l := New("", &buf)
	require.NotNil(t, l)

	l.Logf("iteration %d done", 2)
	assert.Contains(t, buf.String(), "iteration 2 done")
	assert.NoError(t, l.Close())
}

func TestNew_FileAndEcho(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "refinery.log")
	l := New(path, &buf)
	require.NotNil(t, l)

	l.Logf("checkpoint")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "checkpoint")
	assert.Contains(t, buf.String(), "checkpoint")
}
