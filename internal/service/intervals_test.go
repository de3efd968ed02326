package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalLabels(t *testing.T) {
	labels := IntervalLabels()

	require.Len(t, labels, 97)
	assert.Equal(t, "Full Day", labels[0])
	assert.Equal(t, "00:00 - 00:15", labels[1])
	assert.Equal(t, "09:00 - 09:15", labels[37])
	assert.Equal(t, "23:45 - 23:59", labels[96])
}

func TestIntervalLabelsChronological(t *testing.T) {
	labels := IntervalLabels()

	previous := -1
	for _, label := range labels[1:] {
		start, _, _, err := parseIntervalLabel(label)
		require.NoError(t, err, label)
		assert.Greater(t, start, previous, label)
		previous = start
	}
}

func TestIntervalLabelsDeterministic(t *testing.T) {
	assert.Equal(t, IntervalLabels(), IntervalLabels())
}

func TestParseIntervalLabel(t *testing.T) {
	start, end, endOfDay, err := parseIntervalLabel("09:00 - 09:15")
	require.NoError(t, err)
	assert.Equal(t, 9*60, start)
	assert.Equal(t, 9*60+15, end)
	assert.False(t, endOfDay)

	start, _, endOfDay, err = parseIntervalLabel("23:45 - 23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+45, start)
	assert.True(t, endOfDay)
}

func TestParseIntervalLabelRejectsNonCatalogEntries(t *testing.T) {
	for _, label := range []string{"Full Day", "09:00 - 09:30", "25:00 - 25:15", "garbage", ""} {
		_, _, _, err := parseIntervalLabel(label)
		assert.ErrorIs(t, err, ErrMalformedSelection, label)
	}
}
