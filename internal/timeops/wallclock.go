package timeops

import (
	"fmt"
	"regexp"
	"strconv"

	"timeservice/pkg/serrors"
)

// ErrInvalidTimeFormat indicates a time string that is not strict 24-hour
// "HH:MM".
var ErrInvalidTimeFormat = serrors.NewKind("INVALID_TIME_FORMAT")

// Exactly two digits, a colon, two digits. Range checks happen after the
// shape check so "9:05" and "09:5" fail the same way as "abc".
var wallClockPattern = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// WallClock is a validated 24-hour clock reading without seconds.
type WallClock struct {
	Hour   int
	Minute int
}

// ParseWallClock parses s as strict 24-hour "HH:MM". Anything else fails
// with ErrInvalidTimeFormat.
func ParseWallClock(s string) (WallClock, error) {
	m := wallClockPattern.FindStringSubmatch(s)
	if m == nil {
		return WallClock{}, serrors.With(ErrInvalidTimeFormat,
			"time %q is not in 24-hour HH:MM format", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return WallClock{}, serrors.With(ErrInvalidTimeFormat,
			"time %q has hour out of range [0,23]", s)
	}
	if minute > 59 {
		return WallClock{}, serrors.With(ErrInvalidTimeFormat,
			"time %q has minute out of range [0,59]", s)
	}

	return WallClock{Hour: hour, Minute: minute}, nil
}

// String renders the reading back as "HH:MM".
func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}
