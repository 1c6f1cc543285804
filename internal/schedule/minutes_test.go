package schedule

import (
	"fmt"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "midnight", input: "00:00", want: 0, wantOK: true},
		{name: "morning", input: "09:30", want: 570, wantOK: true},
		{name: "end of day", input: "23:59", want: 1439, wantOK: true},
		{name: "single digit hour", input: "9:30", want: 570, wantOK: true},
		{name: "hour out of range", input: "24:00", wantOK: false},
		{name: "minute out of range", input: "10:60", wantOK: false},
		{name: "negative hour", input: "-1:30", wantOK: false},
		{name: "non numeric", input: "ab:cd", wantOK: false},
		{name: "missing minute digit", input: "10:5", wantOK: false},
		{name: "no separator", input: "1030", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "extra segment", input: "10:30:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClock(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestClockRoundTrip verifies that every valid clock value survives a
// format/parse round trip.
func TestClockRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			want := h*60 + m
			formatted := FormatClock(want)
			got, ok := ParseClock(formatted)
			if !ok {
				t.Fatalf("ParseClock(%q) failed for h=%d m=%d", formatted, h, m)
			}
			if got != want {
				t.Fatalf("round trip %02d:%02d = %v, want %v", h, m, got, want)
			}
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1470, "00:30"},
		{-30, "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.minutes); got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestAddClock(t *testing.T) {
	tests := []struct {
		name   string
		hhmm   string
		delta  int
		want   string
		wantOK bool
	}{
		{name: "plain add", hhmm: "09:00", delta: 90, want: "10:30", wantOK: true},
		{name: "wrap past midnight", hhmm: "23:30", delta: 60, want: "00:30", wantOK: true},
		{name: "full day wrap", hhmm: "00:00", delta: 1440, want: "00:00", wantOK: true},
		{name: "negative delta", hhmm: "00:30", delta: -60, want: "23:30", wantOK: true},
		{name: "malformed clock", hhmm: "25:00", delta: 10, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AddClock(tt.hhmm, tt.delta)
			if ok != tt.wantOK {
				t.Fatalf("AddClock(%q, %d) ok = %v, want %v", tt.hhmm, tt.delta, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("AddClock(%q, %d) = %q, want %q", tt.hhmm, tt.delta, got, tt.want)
			}
		})
	}
}

func TestClockSpan(t *testing.T) {
	tests := []struct {
		start  string
		end    string
		want   int
		wantOK bool
	}{
		{start: "09:00", end: "10:00", want: 60, wantOK: true},
		{start: "09:00", end: "09:00", want: 0, wantOK: true},
		{start: "23:30", end: "00:30", want: 60, wantOK: true},
		{start: "22:00", end: "06:00", want: 480, wantOK: true},
		{start: "bogus", end: "10:00", wantOK: false},
		{start: "09:00", end: "bogus", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%s", tt.start, tt.end), func(t *testing.T) {
			got, ok := ClockSpan(tt.start, tt.end)
			if ok != tt.wantOK {
				t.Fatalf("ClockSpan(%q, %q) ok = %v, want %v", tt.start, tt.end, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ClockSpan(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
			if ok && got < 0 {
				t.Errorf("ClockSpan(%q, %q) = %v, must never be negative", tt.start, tt.end, got)
			}
		})
	}
}

func TestSpanOrDefault(t *testing.T) {
	end := "10:30"
	badEnd := "oops"

	tests := []struct {
		name  string
		start string
		end   *string
		want  int
	}{
		{name: "explicit end", start: "09:00", end: &end, want: 90},
		{name: "missing end", start: "09:00", end: nil, want: DefaultDurationMinutes},
		{name: "malformed end", start: "09:00", end: &badEnd, want: DefaultDurationMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spanOrDefault(tt.start, tt.end); got != tt.want {
				t.Errorf("spanOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}
