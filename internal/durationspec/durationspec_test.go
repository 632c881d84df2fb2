package durationspec

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestParseBareSeconds(t *testing.T) {
	for _, n := range []int64{0, 1, 30, 90, 3600, 86400, 1000000} {
		d, err := Parse(strconv.FormatInt(n, 10))
		if err != nil {
			t.Fatalf("Parse(%d): %v", n, err)
		}
		if d != time.Duration(n)*time.Second {
			t.Errorf("Parse(%d) = %v, want %ds", n, d, n)
		}
	}
}

func TestParseComposite(t *testing.T) {
	tests := []struct {
		in   string
		want int64 // seconds
	}{
		{"30s", 30},
		{"5m", 300},
		{"2h", 7200},
		{"1h30m", 5400},
		{"2h15m30s", 8130},
		{"30m1h", 5400},
		{"1m30s", 90},
		{"90", 90},
		{"+5", 5},
		{"0", 0},
		{" 30s ", 30},
		{"30S", 30},
		{"1H30M", 5400},
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if d != time.Duration(tt.want)*time.Second {
			t.Errorf("Parse(%q) = %v, want %ds", tt.in, d, tt.want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"abc",
		"-5",
		"1h1h",
		"30m30m",
		"1h2x",
		"5m3",
		"m5",
		"0m",
		"1h0m",
		"1.5h",
		"1h 30m",
	} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) = %v, want ErrMalformed", in, err)
		}
	}
}

func TestParseRejectsOverflow(t *testing.T) {
	// time.Duration tops out at 2^63-1 nanoseconds; a second count past
	// that would wrap negative and fire an armed timer immediately.
	for _, in := range []string{
		"10000000000", // ~317 years, overflows nanoseconds
		"9223372037",  // one past the largest representable second count
		"9223372036854775807",
		"3000000000h",
		"9000000000s300000000000m",
	} {
		d, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) = %v, want error", in, d)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) = %v, want ErrMalformed", in, err)
		}
	}
}

func TestParseLargestRepresentableDuration(t *testing.T) {
	// The boundary value itself is accepted and stays positive.
	for _, in := range []string{"9223372036", "2562047h"} {
		d, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if d <= 0 {
			t.Errorf("Parse(%q) = %v, want positive duration", in, d)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{90 * time.Minute, "1h30m"},
		{3661 * time.Second, "1h1m1s"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		if got := String(tt.in); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTripThroughString(t *testing.T) {
	for _, d := range []time.Duration{time.Second, 90 * time.Second, 5400 * time.Second, 8130 * time.Second} {
		got, err := Parse(String(d))
		if err != nil {
			t.Fatalf("Parse(String(%v)): %v", d, err)
		}
		if got != d {
			t.Errorf("Parse(String(%v)) = %v", d, got)
		}
	}
}
