package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTimeRoundTrip(t *testing.T) {
	original := LocalTime(time.Date(2026, 8, 28, 15, 4, 5, 0, time.Local))

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-28 15:04:05"`, string(data))

	var parsed LocalTime
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, time.Time(original).Equal(time.Time(parsed)))
}

func TestLocalTimeUnmarshalNull(t *testing.T) {
	var parsed LocalTime
	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	assert.True(t, time.Time(parsed).IsZero())
}
