package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlagBoundToViper(t *testing.T) {
	// initConfig reads the config path through viper, so the flag must be
	// bound for --config to take effect.
	require.NoError(t, rootCmd.PersistentFlags().Set("config", "/tmp/copper-cli-test.yml"))
	assert.Equal(t, "/tmp/copper-cli-test.yml", viper.GetString("config"))
}
