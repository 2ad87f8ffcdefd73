package calendar

import (
	"errors"
	"fmt"
)

const (
	MinutesPerDay = 24 * 60

	// Night window is [21:00, 06:00) of the following day.
	NightStart = 21 * 60
	NightEnd   = 6 * 60
)

var ErrInvalidTime = errors.New("time must be HH:MM in 24-hour format")

// TimeToMinutes parses "HH:MM" into minutes after midnight, in [0, 1439].
func TimeToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Span resolves a shift's boundaries to minute offsets from midnight of the
// shift date. An end earlier than the start belongs to the next day, so the
// returned end may exceed MinutesPerDay.
func Span(start, end string) (int, int, error) {
	s, err := TimeToMinutes(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := TimeToMinutes(end)
	if err != nil {
		return 0, 0, err
	}
	if e < s {
		e += MinutesPerDay
	}
	return s, e, nil
}

func HoursBetween(start, end string) (float64, error) {
	s, e, err := Span(start, end)
	if err != nil {
		return 0, err
	}
	return float64(e-s) / 60, nil
}

func NightHours(start, end string) (float64, error) {
	s, e, err := Span(start, end)
	if err != nil {
		return 0, err
	}
	return float64(NightMinutes(s, e)) / 60, nil
}

// nightWindows covers every night interval a shift shorter than a day can
// touch: early morning of the shift date, the night into the next day, and the
// evening of the next day.
var nightWindows = [][2]int{
	{0, NightEnd},
	{NightStart, MinutesPerDay + NightEnd},
	{MinutesPerDay + NightStart, 2 * MinutesPerDay},
}

// NightMinutes counts the minutes of [start, end) inside the night window.
// start is in [0, 1440) and end is already wraparound-normalised.
func NightMinutes(start, end int) int {
	total := 0
	for _, w := range nightWindows {
		total += overlap(start, end, w[0], w[1])
	}
	return total
}

func overlap(a0, a1, b0, b1 int) int {
	lo, hi := max(a0, b0), min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
