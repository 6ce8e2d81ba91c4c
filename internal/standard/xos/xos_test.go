// Copyright 2026 Peter Edge
//
// All rights reserved.

package xos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	t.Parallel()
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	for input, want := range map[string]string{
		"~":                     homeDir,
		"~/.config/config.yaml": filepath.Join(homeDir, ".config", "config.yaml"),
		"/etc/config.yaml":      "/etc/config.yaml",
		"config.yaml":           "config.yaml",
		"~other/config.yaml":    "~other/config.yaml",
	} {
		got, err := ExpandHome(input)
		require.NoError(t, err)
		require.Equal(t, want, got, input)
	}
}
