package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommandAcceptsValidPlaybook(t *testing.T) {
	path := writePlaybook(t, validPlaybook)

	out, err := executeCommand(newRootCmd(), "validate", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "appliance baseline")
	require.Contains(t, out, "1 tasks")
}

func TestValidateCommandRejectsMissingFile(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "validate", "--config", "/path/does/not/exist.yml")
	require.Error(t, err)
}

func TestModulesCommandListsRegisteredModules(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "modules")
	require.NoError(t, err)
	require.Contains(t, out, "id_pools")
	require.Contains(t, out, "ipv4_range")
	require.Contains(t, out, "time_locale")
}

func TestVersionCommandPrintsBuildInfo(t *testing.T) {
	out, err := executeCommand(newRootCmd(), "version")
	require.NoError(t, err)
	require.Contains(t, out, "ovapply")
	require.Contains(t, out, "commit:")
}
