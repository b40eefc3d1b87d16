package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	assert.Equal(t, 0, parseClock("00:00"))
	assert.Equal(t, 510, parseClock("08:30"))
	assert.Equal(t, 1290, parseClock("21:30"))
	assert.Equal(t, 540, parseClock(" 9:00 "))

	// Malformed inputs anchor at 08:00.
	assert.Equal(t, 480, parseClock(""))
	assert.Equal(t, 480, parseClock("noon"))
	assert.Equal(t, 480, parseClock("12:xx"))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", formatClock(480))
	assert.Equal(t, "00:05", formatClock(5))
	assert.Equal(t, "01:00", formatClock(25*60), "wraps past midnight")
	assert.Equal(t, "23:00", formatClock(-60))
}

func TestAddHours(t *testing.T) {
	assert.Equal(t, "11:30", addHours("09:30", 2))
	assert.Equal(t, "10:00", addHours("09:30", 0.5))
	assert.Equal(t, "00:30", addHours("23:30", 1))
	assert.Equal(t, "junk", addHours("junk", 2), "unparseable input passes through")
}
