package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

// canonical digit widths of HH, MM, SS and mmm
var timestampWidths = [4]int{2, 2, 2, 3}

// ParseTimestamp decodes HH:MM:SS,mmm into milliseconds. canonical reports
// whether every field carried its zero-padded width. The sum is not guarded
// against overflow.
func ParseTimestamp(s string) (ms uint64, canonical bool, err error) {
	dials := strings.Split(s, ":")
	if len(dials) != 3 {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidTimestampShape, s)
	}

	last := strings.Split(dials[2], ",")
	if len(last) != 2 {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidTimestampShape, s)
	}

	fields := [4]string{dials[0], dials[1], last[0], last[1]}

	canonical = true
	for i, f := range fields {
		if len(f) != timestampWidths[i] {
			canonical = false
		}
	}

	var values [4]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return 0, canonical, fmt.Errorf("%w %q: %v", ErrInvalidTimestampField, f, err)
		}
		values[i] = v
	}

	ms = values[0]*msPerHour +
		values[1]*msPerMinute +
		values[2]*msPerSecond +
		values[3]
	return ms, canonical, nil
}

// FormatTimestamp renders d in canonical SubRip form
func FormatTimestamp(d time.Duration) string {
	ms := uint64(max(d.Milliseconds(), 0))

	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		ms/msPerHour,
		ms%msPerHour/msPerMinute,
		ms%msPerMinute/msPerSecond,
		ms%msPerSecond,
	)
}
