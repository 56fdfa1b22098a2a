package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	conf, err := NewConfig()
	require.NoError(t, err)

	assert.NotZero(t, conf.App.Port)
	assert.NotEmpty(t, conf.App.JwtKey)
	assert.NotEmpty(t, conf.Db.Scheme)

	t.Logf("%+v", conf)
}

func TestLogLevel(t *testing.T) {
	conf, err := NewConfig()
	require.NoError(t, err)

	level, err := conf.LogLevel()
	assert.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestDecodedSecrets(t *testing.T) {
	conf, err := NewConfig()
	require.NoError(t, err)

	// embedded values are base64; NewConfig hands back plain text
	assert.Equal(t, "fundtracker-dev-secret", conf.App.JwtKey)
	assert.Equal(t, "fundtracker", conf.Db.Password)
}
