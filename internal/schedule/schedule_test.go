package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSplitRoundTrip(t *testing.T) {
	composed, err := Compose("2025-03-10", "14:30")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T14:30:00Z", composed)

	date, clock, err := Split(composed)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", date)
	assert.Equal(t, "14:30", clock)
}

func TestComposeAcceptsImpossibleCalendarDate(t *testing.T) {
	composed, err := Compose("2024-02-30", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-30T09:00:00Z", composed)

	date, clock, err := Split(composed)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-30", date)
	assert.Equal(t, "09:00", clock)
}

func TestComposeRejectsMalformedInput(t *testing.T) {
	_, err := Compose("10-03-2025", "14:30")
	assert.Error(t, err)

	_, err = Compose("2025-03-10", "2pm")
	assert.Error(t, err)
}

func TestSplitRejectsGarbage(t *testing.T) {
	_, _, err := Split("not a timestamp")
	assert.Error(t, err)
}

func TestDisplayFormats(t *testing.T) {
	assert.Equal(t, "05/01/2025", DisplayDate("2025-01-05T09:00:00Z"))
	assert.Equal(t, "09:00", DisplayTime("2025-01-05T09:00:00Z"))

	// unparseable values render verbatim instead of failing
	assert.Equal(t, "2024-02-30T09:00:00Z", DisplayDate("2024-02-30T09:00:00Z"))
}
