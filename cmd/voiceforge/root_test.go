package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRoot_RequiresText(t *testing.T) {
	err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
}

func TestRoot_RequiresAPIKey(t *testing.T) {
	t.Setenv("VOICEFORGE_API_KEY", "")

	err := execute(t, "--text", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VOICEFORGE_API_KEY")
}

func TestRoot_UnknownVoice(t *testing.T) {
	t.Setenv("VOICEFORGE_API_KEY", "test-key")

	err := execute(t, "--text", "hello", "--voice", "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown voice "nonexistent"`)
	assert.Contains(t, err.Error(), "aria")
}

func TestRoot_FlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	voice, err := cmd.Flags().GetString("voice")
	require.NoError(t, err)
	assert.Equal(t, "aria", voice)

	output, err := cmd.Flags().GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "output.mp3", output)

	stream, err := cmd.Flags().GetBool("stream")
	require.NoError(t, err)
	assert.False(t, stream)
}
