package ui

import (
	"fmt"
	"math"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Duration renders d in its largest whole unit: 5d, 3h, 12m, 4s, 250ms.
func Duration(d time.Duration) string {
	ms := d.Milliseconds()
	abs := ms
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= msPerDay:
		return fmt.Sprintf("%dd", round(ms, msPerDay))
	case abs >= msPerHour:
		return fmt.Sprintf("%dh", round(ms, msPerHour))
	case abs >= msPerMinute:
		return fmt.Sprintf("%dm", round(ms, msPerMinute))
	case abs >= msPerSecond:
		return fmt.Sprintf("%ds", round(ms, msPerSecond))
	}
	return fmt.Sprintf("%dms", ms)
}

// Ago renders the time between the unix millisecond timestamp ms and now.
// A zero timestamp is measured from the epoch like any other.
func Ago(ms int64, now time.Time) string {
	return Duration(now.Sub(time.UnixMilli(ms))) + " ago"
}

// Stamp starts a timer. Each call of the returned function renders the
// elapsed time as "[1s]".
func Stamp() func() string {
	start := time.Now()
	return func() string {
		return fmt.Sprintf("[%s]", Duration(time.Since(start)))
	}
}

func round(ms, unit int64) int64 {
	return int64(math.Round(float64(ms) / float64(unit)))
}
