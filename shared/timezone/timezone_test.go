package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	assert.NotNil(t, appTime.Location())
	assert.True(t, appTime.Equal(utcTime))
}

func TestFormatAndParse(t *testing.T) {
	checkIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(checkIn, "2006-01-02 15:04:05 MST"))

	parsed, err := timezone.Parse("2006-01-02", "2026-03-01")
	assert.NoError(t, err)
	assert.False(t, parsed.IsZero())
}
