package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "warn"}, cfg)
}

func TestFromYAML(t *testing.T) {
	fileInput := []byte(`
log-level: DEBUG
log-file: /tmp/objmesh.log
profile: cpu
`)
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(fileInput)))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/objmesh.log", cfg.LogFile)
	assert.Equal(t, ProfileCPU, cfg.Profile)
}

func TestInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("log-level", "verbose")
	_, err := FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	SetDefaults(v)
	v.Set("profile", "block")
	_, err = FromViper(v)
	assert.Error(t, err)
}
