package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Date
		err   bool
	}{
		{"1992-08-14", New(1992, time.August, 14), false},
		{"1992/08/14", New(1992, time.August, 14), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2025/7/1 ", New(2025, time.July, 1), false},
		{"1992/08/14 11:12:30", Date{}, true},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		err   bool
	}{
		{"1992/07/14 11:12:30", time.Date(1992, 7, 14, 11, 12, 30, 0, time.UTC), false},
		{"1992-07-14 11:12:30", time.Date(1992, 7, 14, 11, 12, 30, 0, time.UTC), false},
		{"1992-07-14T11:12:30", time.Date(1992, 7, 14, 11, 12, 30, 0, time.UTC), false},
		{"1992-07-14T11:12:30Z", time.Date(1992, 7, 14, 11, 12, 30, 0, time.UTC), false},
		{"1992/7/4 09:05", time.Date(1992, 7, 4, 9, 5, 0, 0, time.UTC), false},
		{"1992/07/14", time.Time{}, true},
		{"yesterday", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseTime(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// A day starts before any timestamp of that same day.
func TestDayStartsBeforeTimestamps(t *testing.T) {
	day := MustParse("1992/10/15")
	for _, ts := range []string{"1992/10/15 00:00:00", "1992/10/15 16:14:30"} {
		tm := MustParseTime(ts)
		if tm.Before(day.Time()) {
			t.Errorf("%s is before the start of %s", ts, day)
		}
		if Of(tm) != day {
			t.Errorf("Of(%s) = %v, want %v", ts, Of(tm), day)
		}
	}
	if !MustParseTime("1992/10/14 23:59:59").Before(day.Time()) {
		t.Errorf("previous day timestamp should be before %s", day)
	}
}
