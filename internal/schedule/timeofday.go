package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MinutesSinceMidnight returns the wall-clock time of t as fractional minutes.
// Sub-second precision is dropped.
func MinutesSinceMidnight(t time.Time) float64 {
	return float64(t.Hour())*60 + float64(t.Minute()) + float64(t.Second())/60
}

// ISOWeekday returns the day of week of t, Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// ParseTimeOfDay parses "HH:MM:SS" into minutes since midnight.
func ParseTimeOfDay(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q is not HH:MM:SS", ErrInvalidTime, s)
	}

	limits := [3]int{23, 59, 59}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("%w: %q is not HH:MM:SS", ErrInvalidTime, s)
		}
		v[i] = n
	}
	return float64(v[0])*60 + float64(v[1]) + float64(v[2])/60, nil
}

// FormatTimeOfDay renders minutes since midnight as HH:MM:SS.
func FormatTimeOfDay(minutes float64) string {
	total := int(math.Round(minutes * 60))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
