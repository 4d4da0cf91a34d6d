package cmd

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Bind(&cli))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestServeCmd_MutedByDefault(t *testing.T) {
	cli := parseCLI(t, "serve")
	assert.False(t, cli.Serve.Sound)
}

func TestServeCmd_SoundFlagEnablesServerTones(t *testing.T) {
	cli := parseCLI(t, "serve", "--sound")
	assert.True(t, cli.Serve.Sound)
}
