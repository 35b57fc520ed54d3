package shop

import (
	"strconv"
	"strings"
	"time"
)

// CycleStart returns the start of the shop's current business cycle: today's
// occurrence of openingTime if now is at or past it, otherwise yesterday's.
// This anchors "today" to the shop's opening hour rather than midnight, so a
// shop open past midnight still has one coherent business day.
//
// openingTime is an "HH:MM" 24-hour string. Malformed or empty values fall
// back to "00:00" instead of failing; the dashboard must keep working for
// shops with sloppy configuration.
//
// The boundary instant belongs to the new cycle: at exactly openingTime the
// returned instant equals now.
func CycleStart(openingTime string, now time.Time) time.Time {
	hour, minute := parseOpeningTime(openingTime)

	start := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

func parseOpeningTime(s string) (hour, minute int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 || h > 23 {
		return 0, 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 0 || m > 59 {
		return 0, 0
	}
	return h, m
}
