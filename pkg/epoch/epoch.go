package epoch

import "time"

// Seconds converts t to whole seconds since the Unix epoch, flooring any
// sub-second component.
func Seconds(t time.Time) int64 {
	return t.Unix()
}

// FromMillis converts a millisecond timestamp to whole epoch seconds using
// floor division, so pre-epoch (negative) timestamps round toward the past
// rather than toward zero.
func FromMillis(ms int64) int64 {
	s := ms / 1000
	if ms%1000 < 0 {
		s--
	}
	return s
}

// Now returns the current time in epoch seconds.
func Now() int64 {
	return time.Now().Unix()
}
