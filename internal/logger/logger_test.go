package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core))

	log.With("game_id", "g1").Info("Round recorded", "round", 3)
	log.Error("Failed to end game", errors.New("tx aborted"), "game_id", "g2")
	log.Debug("Standings computed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "Round recorded", entries[0].Message)
	assert.Equal(t, "g1", first["game_id"])
	assert.EqualValues(t, 3, first["round"])

	second := entries[1].ContextMap()
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "g2", second["game_id"])
	assert.Contains(t, second["error"], "tx aborted")
}

func TestNewFallsBackToInfo(t *testing.T) {
	log, err := New("chatty")
	require.NoError(t, err)
	assert.NotNil(t, log)
}
