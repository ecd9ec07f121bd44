package util

import (
	"testing"
	"time"
)

func TestFormatRelative(t *testing.T) {
	tests := []struct {
		name      string
		now       Stamp
		createdAt Stamp
		expected  string
	}{
		{
			name:      "same minute",
			now:       Stamp{2024, 5, 10, 12, 0, 5},
			createdAt: Stamp{2024, 5, 10, 12, 0, 0},
			expected:  "5초 전",
		},
		{
			name:      "single minute wrap borrows seconds",
			now:       Stamp{2024, 5, 10, 12, 1, 2},
			createdAt: Stamp{2024, 5, 10, 12, 0, 58},
			expected:  "4초 전",
		},
		{
			name:      "single minute without wrap",
			now:       Stamp{2024, 5, 10, 12, 1, 30},
			createdAt: Stamp{2024, 5, 10, 12, 0, 10},
			expected:  "1분 전",
		},
		{
			name:      "two minutes with borrow is not corrected",
			now:       Stamp{2024, 5, 10, 12, 2, 1},
			createdAt: Stamp{2024, 5, 10, 12, 0, 59},
			expected:  "2분 전",
		},
		{
			name:      "hours differ",
			now:       Stamp{2024, 5, 10, 14, 3, 0},
			createdAt: Stamp{2024, 5, 10, 13, 10, 0},
			expected:  "1시간 전",
		},
		{
			name:      "different day same year",
			now:       Stamp{2024, 5, 10, 12, 0, 0},
			createdAt: Stamp{2024, 5, 9, 12, 0, 0},
			expected:  "05.09",
		},
		{
			name:      "different month same day number",
			now:       Stamp{2024, 6, 9, 12, 0, 0},
			createdAt: Stamp{2024, 5, 9, 12, 0, 0},
			expected:  "05.09",
		},
		{
			name:      "different year",
			now:       Stamp{2024, 1, 1, 0, 0, 0},
			createdAt: Stamp{2023, 12, 31, 23, 59, 0},
			expected:  "23.12.31",
		},
		{
			name:      "midnight crossing falls through to date",
			now:       Stamp{2024, 5, 11, 0, 1, 0},
			createdAt: Stamp{2024, 5, 10, 23, 59, 0},
			expected:  "05.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRelative(tt.now, tt.createdAt)
			if got != tt.expected {
				t.Errorf("FormatRelative() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseStamp(t *testing.T) {
	s, err := ParseStamp("2024-05-10T03:04:05.123456")
	if err != nil {
		t.Fatalf("ParseStamp returned error: %v", err)
	}
	expected := Stamp{2024, 5, 10, 3, 4, 5}
	if s != expected {
		t.Errorf("Expected %+v, got %+v", expected, s)
	}

	if _, err := ParseStamp("2024-05-10"); err == nil {
		t.Error("Expected error for short timestamp")
	}
	if _, err := ParseStamp("2024-05-10Txx:04:05"); err == nil {
		t.Error("Expected error for non-numeric hour")
	}
}

func TestNowStamp(t *testing.T) {
	// 2024-05-10 03:04:05 UTC is 12:04:05 in +9
	now := time.Date(2024, 5, 10, 3, 4, 5, 0, time.UTC)
	s := NowStamp(now, 9)

	expected := Stamp{2024, 5, 10, 3, 4, 5}
	if s != expected {
		t.Errorf("Expected %+v, got %+v", expected, s)
	}

	// 20:00 UTC is the next calendar day in +9, the hour stays unwrapped
	late := time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)
	s = NowStamp(late, 9)
	if s.Day != 11 || s.Hour != -4 {
		t.Errorf("Expected day 11 hour -4, got day %d hour %d", s.Day, s.Hour)
	}
}

func TestDisplayHeader(t *testing.T) {
	s := Stamp{2024, 5, 10, 3, 4, 5}
	if got := s.DisplayHeader(9); got != "2024-05-10 12:4:5" {
		t.Errorf("Unexpected header %q", got)
	}
	// the offset never wraps
	s = Stamp{2024, 5, 10, 20, 0, 0}
	if got := s.DisplayHeader(9); got != "2024-05-10 29:0:0" {
		t.Errorf("Unexpected header %q", got)
	}
}

func TestFormatRelativeString(t *testing.T) {
	now := Stamp{2024, 5, 10, 12, 0, 5}
	if got := FormatRelativeString(now, "2024-05-10T12:00:00"); got != "5초 전" {
		t.Errorf("Unexpected %q", got)
	}
	if got := FormatRelativeString(now, "garbage"); got != "garbage" {
		t.Errorf("Expected raw value for unparseable input, got %q", got)
	}
}
