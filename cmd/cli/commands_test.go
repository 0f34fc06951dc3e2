package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandList(t *testing.T) {
	out := renderCommandList(NewDemo(nil).Programs())

	assert.Contains(t, out, "Shell commands")
	for _, name := range []string{"exit", "help", "led", "echo", "add", "history", "clear"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "<on|off|toggle>")
	assert.Contains(t, out, "add two integers")
}

func TestCommandsCommand(t *testing.T) {
	cmd := newCommandsCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "drive the status LED")
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--short"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "dev\n", buf.String())
}
