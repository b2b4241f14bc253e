package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planventure/pkg/utils"
)

func TestParseDate(t *testing.T) {
	d, err := utils.ParseDate("2025-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 1, d.Day())

	_, err = utils.ParseDate("01/09/2025")
	assert.Error(t, err)

	_, err = utils.ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.September, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-09-01", utils.FormatDate(d))
	assert.Equal(t, "", utils.FormatDate(time.Time{}))
}

func TestDurationDays(t *testing.T) {
	start, _ := utils.ParseDate("2025-09-01")

	assert.Equal(t, 1, utils.DurationDays(start, start))

	end, _ := utils.ParseDate("2025-09-03")
	assert.Equal(t, 3, utils.DurationDays(start, end))

	// Across a month boundary.
	end, _ = utils.ParseDate("2025-10-01")
	assert.Equal(t, 31, utils.DurationDays(start, end))
}
