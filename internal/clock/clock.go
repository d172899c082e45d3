// Package clock provides the epoch-millisecond timestamps stored on customer records.
package clock

import "time"

// Now returns the current wall-clock time in milliseconds since the Unix epoch.
func Now() uint64 {
	return uint64(time.Now().UnixMilli())
}

// Since returns the number of milliseconds elapsed since t.
// A t at or beyond the current time yields zero, never an underflow.
func Since(t uint64) uint64 {
	now := Now()
	if now <= t {
		return 0
	}
	return now - t
}
