// Copyright 2026 Peter Edge
//
// All rights reserved.

package hijrictlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/stretchr/testify/require"
)

func TestInitAndReadConfig(t *testing.T) {
	t.Parallel()
	configDirPath := filepath.Join(t.TempDir(), "hijrictl")
	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, ConfigFilePath(configDirPath), filePath)
	// The template must parse to the defaults.
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
	require.NoError(t, ValidateConfigFile(filePath))
	// A second init must not overwrite the file.
	_, err = InitConfig(configDirPath)
	require.Error(t, err)
}

func TestReadConfigMissing(t *testing.T) {
	t.Parallel()
	config, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
	require.Error(t, ValidateConfigFile(filepath.Join(t.TempDir(), ConfigFileName)))
}

func TestReadConfigOverrides(t *testing.T) {
	t.Parallel()
	configDirPath := t.TempDir()
	writeConfig(t, configDirPath, `version: v1
language: ar
format: json
dmy:
  separator: "."
  padding: false
`)
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	require.Equal(t, &Config{
		Language:     "ar",
		Format:       cliio.FormatJSON,
		DMYSeparator: ".",
		DMYPadding:   false,
	}, config)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()
	for _, data := range []string{
		"version: v2\n",
		"language: en\n",
		"version: v1\nformat: xml\n",
		"version: v1\nlanguage: \"not a tag\"\n",
		"version: v1\nunknown: true\n",
	} {
		configDirPath := t.TempDir()
		writeConfig(t, configDirPath, data)
		_, err := ReadConfig(configDirPath)
		require.Error(t, err, data)
	}
}

func writeConfig(t *testing.T, configDirPath string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(ConfigFilePath(configDirPath), []byte(data), 0o644))
}
