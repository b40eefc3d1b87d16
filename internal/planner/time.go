package planner

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultAnchorMinutes = 8 * 60 // 08:00

// parseClock converts an "HH:MM" string to minutes since midnight. Malformed
// or empty values fall back to the fixed 08:00 anchor so callers never have
// to handle a parse error.
func parseClock(t string) int {
	s := strings.TrimSpace(t)
	if s == "" {
		return defaultAnchorMinutes
	}
	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return defaultAnchorMinutes
	}
	m := 0
	if len(parts) == 2 && parts[1] != "" {
		m, err = strconv.Atoi(parts[1])
		if err != nil {
			return defaultAnchorMinutes
		}
	}
	return h*60 + m
}

// formatClock renders minutes since midnight as "HH:MM", wrapping at 24h.
func formatClock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// addHours shifts a clock string forward by a duration in hours. An
// unparseable input is returned unchanged.
func addHours(t string, hours float64) string {
	s := strings.TrimSpace(t)
	if s == "" {
		return s
	}
	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return s
	}
	m := 0
	if len(parts) == 2 && parts[1] != "" {
		m, err = strconv.Atoi(parts[1])
		if err != nil {
			return s
		}
	}
	return formatClock(h*60 + m + int(hours*60))
}
