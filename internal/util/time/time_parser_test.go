package time_parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseDate_WithDateOnlyFormat_ReturnsUTCMidnight(t *testing.T) {
	result, err := ParseDate("2024-03-17")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), result)
	assert.Equal(t, time.UTC, result.Location())
}

func Test_ParseDate_WithRFC3339_ReturnsInstantInUTC(t *testing.T) {
	result, err := ParseDate("2024-03-17T15:30:00+02:00")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 17, 13, 30, 0, 0, time.UTC), result)
}

func Test_ParseDate_WithInvalidString_ReturnsError(t *testing.T) {
	_, err := ParseDate("17/03/2024")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func Test_ParseDate_WithEmptyString_ReturnsError(t *testing.T) {
	_, err := ParseDate("")

	assert.Error(t, err)
}

func Test_ParseDate_WithImpossibleDate_ReturnsError(t *testing.T) {
	_, err := ParseDate("2024-02-30")

	assert.Error(t, err)
}

func Test_FormatDate_RendersWireFormat(t *testing.T) {
	instant := time.Date(2024, 3, 17, 22, 45, 0, 0, time.FixedZone("UTC-5", -5*60*60))

	assert.Equal(t, "2024-03-18", FormatDate(instant))
}
