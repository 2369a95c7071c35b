package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSON(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	SetupWriter(&buf, "warn", "json")

	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "storefront", entry["service"])
	assert.Equal(t, "test", entry["component"])
}

func TestSetupWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	SetupWriter(&buf, "loud", "console")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
