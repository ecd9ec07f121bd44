package util

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultDisplayOffsetHours is the fixed offset the forum displays its times in (KST)
const DefaultDisplayOffsetHours = 9

// Stamp holds the calendar fields of a timestamp as plain integers.
// Fields are compared one by one; no elapsed duration is ever computed from them.
type Stamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// character positions of the server's createAt layout "YYYY-MM-DDTHH:MM:SS..."
var stampFields = [6][2]int{{0, 4}, {5, 7}, {8, 10}, {11, 13}, {14, 16}, {17, 19}}

// ParseStamp slices a server timestamp at fixed character positions.
// The zone is never interpreted: the hour is taken as written.
func ParseStamp(s string) (Stamp, error) {
	if len(s) < 19 {
		return Stamp{}, fmt.Errorf("timestamp %q too short", s)
	}

	var v [6]int
	for i, f := range stampFields {
		n, err := strconv.Atoi(s[f[0]:f[1]])
		if err != nil {
			return Stamp{}, fmt.Errorf("timestamp %q: bad field %q: %w", s, s[f[0]:f[1]], err)
		}
		v[i] = n
	}

	return Stamp{Year: v[0], Month: v[1], Day: v[2], Hour: v[3], Minute: v[4], Second: v[5]}, nil
}

// NowStamp captures "now" for a view. Calendar fields, minutes and seconds are read in a
// fixed zone of +offsetHours; the hour is shifted back by the same offset without wrapping,
// which is how server hours are compared.
func NowStamp(t time.Time, offsetHours int) Stamp {
	z := t.In(time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600))
	return Stamp{
		Year:   z.Year(),
		Month:  int(z.Month()),
		Day:    z.Day(),
		Hour:   z.Hour() - offsetHours,
		Minute: z.Minute(),
		Second: z.Second(),
	}
}

// DisplayHeader renders the post creation time with the display offset added to the hour
func (s Stamp) DisplayHeader(offsetHours int) string {
	return fmt.Sprintf("%04d-%02d-%02d %d:%d:%d", s.Year, s.Month, s.Day, s.Hour+offsetHours, s.Minute, s.Second)
}

// FormatRelative renders how long ago createdAt was, coarsened to the most
// significant field that differs from now. First matching branch wins.
func FormatRelative(now, createdAt Stamp) string {
	switch {
	case createdAt.Year != now.Year:
		return fmt.Sprintf("%02d.%02d.%02d", createdAt.Year%100, createdAt.Month, createdAt.Day)
	case createdAt.Month != now.Month || createdAt.Day != now.Day:
		return fmt.Sprintf("%02d.%02d", createdAt.Month, createdAt.Day)
	case createdAt.Hour != now.Hour:
		return fmt.Sprintf("%d시간 전", now.Hour-createdAt.Hour)
	case createdAt.Minute != now.Minute:
		// only a single-minute boundary borrows seconds
		if now.Minute-createdAt.Minute == 1 && now.Second < createdAt.Second {
			return fmt.Sprintf("%d초 전", 60-createdAt.Second+now.Second)
		}
		return fmt.Sprintf("%d분 전", now.Minute-createdAt.Minute)
	default:
		return fmt.Sprintf("%d초 전", now.Second-createdAt.Second)
	}
}

// FormatRelativeString parses a raw server timestamp and formats it against now.
// Unparseable timestamps are shown as written.
func FormatRelativeString(now Stamp, createdAt string) string {
	s, err := ParseStamp(createdAt)
	if err != nil {
		return createdAt
	}
	return FormatRelative(now, s)
}
