package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSAS(t *testing.T) {
	cmd := SAS()

	require.NotNil(t, cmd)
	assert.Equal(t, "sas", cmd.Use)

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["hub"])
	assert.True(t, subcommands["device"])
}

func TestSASHubFlags(t *testing.T) {
	cmd := sasHub()

	hours := cmd.Flags().Lookup("hours")
	require.NotNil(t, hours)
	assert.Equal(t, "1", hours.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("connection-string"))
}

func TestSASDeviceRequiresConnectionString(t *testing.T) {
	cmd := sasDevice()
	cmd.SetArgs([]string{"--hours", "1"})

	assert.Error(t, cmd.Execute())
}
