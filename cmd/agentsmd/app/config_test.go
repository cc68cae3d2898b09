package app

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/agentsmd/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultSourceDir, config.SourceDir)
	assert.Equal(t, constants.DefaultOutputFile, config.OutputFile)
	assert.Equal(t, constants.IndexFileName, config.IndexFile)
	assert.False(t, config.TOC)
	assert.Empty(t, config.LogLevel)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

func TestLoadConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SOURCE", "custom/docs")
	t.Setenv("OUTPUT", "CUSTOM.md")
	t.Setenv("LOG_FORMAT", "json")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom/docs", config.SourceDir)
	assert.Equal(t, "CUSTOM.md", config.OutputFile)
	assert.Equal(t, "json", config.LogFormat)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: ""}

	config.UpdateFromFlags(true, false, true, "json", "debug")
	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)

	// Empty flag values leave the previous format and level alone.
	config.UpdateFromFlags(false, true, false, "", "")
	assert.False(t, config.Verbose)
	assert.True(t, config.Quiet)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}
