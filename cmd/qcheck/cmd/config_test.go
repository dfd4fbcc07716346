package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileConfigDefaultsWhenPathEmpty(t *testing.T) {
	cfg, err := loadFileConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultFileConfig(), cfg)
}

func TestLoadFileConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := loadFileConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultFileConfig(), cfg)
}

func TestLoadFileConfigReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\nruns: 500\nverbosity: 2\n"), 0o644))
	cfg, err := loadFileConfig(path)
	require.NoError(t, err)
	require.Equal(t, fileConfig{Seed: 42, Runs: 500, Verbosity: 2}, cfg)
}
