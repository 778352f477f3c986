package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateVariant(t *testing.T) {
	for _, v := range []string{"outlined", "underlined", "filled", "plain"} {
		require.NoError(t, validateVariant(v), "variant %q should be accepted", v)
	}
	require.Error(t, validateVariant("fancy"), "unknown variants should be rejected")
	require.Error(t, validateVariant(""), "an empty variant should be rejected")
}

func TestInitCreatesConfigOnce(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, runInit(initCmd, nil))

	data, err := os.ReadFile(filepath.Join(".fieldline", "config.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "preset: default")
	require.Contains(t, string(data), "variant: outlined")

	err = runInit(initCmd, nil)
	require.Error(t, err, "a second init must not overwrite the config")
}
