package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVersionCmd(t *testing.T, app *App) string {
	t.Helper()
	cmd := NewVersionCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.RunE(cmd, nil))
	return out.String()
}

func TestVersionCmd_Defaults(t *testing.T) {
	out := runVersionCmd(t, New())

	assert.Contains(t, out, "refinery version dev")
	assert.Contains(t, out, "commit: unknown")
	assert.Contains(t, out, "built: unknown")
}

func TestVersionCmd_SetVersion(t *testing.T) {
	app := New()
	app.SetVersion("1.2.0", "abc1234", "2026-08-29")

	out := runVersionCmd(t, app)
	assert.Contains(t, out, "refinery version 1.2.0")
	assert.Contains(t, out, "commit: abc1234")
	assert.Contains(t, out, "built: 2026-08-29")
}

func TestRootCmd_HasAllCommands(t *testing.T) {
	app := New()

	var names []string
	for _, c := range app.rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"run", "resume", "sessions", "export", "version"} {
		assert.Contains(t, names, want)
	}
}
