package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeState(t *testing.T, raw string) StationState {
	t.Helper()
	var state StationState
	err := json.Unmarshal([]byte(raw), &state)
	assert.NoError(t, err)
	return state
}

func TestHasDefaultStation_NestedStationObject(t *testing.T) {
	state := decodeState(t, `{"station":{"id":"st1"}}`)

	assert.True(t, state.HasDefaultStation("st1"))
	assert.False(t, state.HasDefaultStation("st2"))
}

func TestHasDefaultStation_FlatField(t *testing.T) {
	state := decodeState(t, `{"defaultStationId":"st1"}`)

	assert.True(t, state.HasDefaultStation("st1"))
}

func TestHasDefaultStation_AliasedObjectField(t *testing.T) {
	state := decodeState(t, `{"associatedStation":{"id":"st1","name":"WebRTC - Alice"}}`)

	assert.True(t, state.HasDefaultStation("st1"))
}

func TestHasDefaultStation_AnyKnownShapeMatches(t *testing.T) {
	// Смешанный ответ: совпадение в любой известной форме достаточно
	state := decodeState(t, `{"defaultStation":{"id":"other"},"stationId":"st1"}`)

	assert.True(t, state.HasDefaultStation("st1"))
}

func TestHasDefaultStation_EmptyOrMissing(t *testing.T) {
	assert.False(t, StationState(nil).HasDefaultStation("st1"))
	assert.False(t, decodeState(t, `{}`).HasDefaultStation("st1"))
	assert.False(t, decodeState(t, `{"station":{"id":"st1"}}`).HasDefaultStation(""))
	assert.False(t, decodeState(t, `{"station":{"name":"no id"}}`).HasDefaultStation("st1"))
}
