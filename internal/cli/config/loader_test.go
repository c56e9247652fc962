package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	assert.Equal(t, DefaultBotTimeout, cfg.BotTimeout)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "joinforge.yaml")
	content := "port: 9000\nverbose: true\nhistory_file: /tmp/history\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/tmp/history", cfg.HistoryFile)
	// Unset keys keep their defaults
	assert.Equal(t, DefaultBotTimeout, cfg.BotTimeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "joinforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0o600))

	t.Setenv("JOINFORGE_PORT", "9100")
	t.Setenv("JOINFORGE_BOT_TOKEN", "secret-token")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "secret-token", cfg.BotToken)
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	t.Setenv("JOINFORGE_PORT", "9100")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", DefaultPort, "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--port", "9200"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Port)
	// A flag left at its default must not mask env or file values
	assert.False(t, cfg.Verbose)
}

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := &Config{Port: 1234}
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))

	// Fallback when nothing stored
	fallback := FromContext(context.Background())
	assert.Equal(t, DefaultPort, fallback.Port)
}
