package conv

import (
	"math"
	"testing"
)

func TestBool(t *testing.T) {
	tests := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{"1", true, true},
		{"true", true, true},
		{"0", false, true},
		{"false", false, true},
		{"", false, false},
		{"yes", false, false},
		{"TRUE", false, false}, // OOXML booleans are lowercase
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Bool(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Bool(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"0", 0, true},
		{"-57150", -57150, true},
		{"5400000", 5400000, true},
		{"100.000%", 100000, true},
		{"-12.5%", -12500, true},
		{"abc", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Int(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Int(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUnitConversions(t *testing.T) {
	if got := EMUToPoints(12700); got != 1.0 {
		t.Errorf("EMUToPoints(12700) = %v, want 1.0", got)
	}
	if got := EMUToPoints(57150); got != 4.5 {
		t.Errorf("EMUToPoints(57150) = %v, want 4.5", got)
	}
	if got := AngleToDegrees(5400000); got != 90.0 {
		t.Errorf("AngleToDegrees(5400000) = %v, want 90", got)
	}
	if got := PercentToFloat(56000); math.Abs(got-0.56) > 1e-9 {
		t.Errorf("PercentToFloat(56000) = %v, want 0.56", got)
	}
	if got := TextPointToPoints(1100); got != 11.0 {
		t.Errorf("TextPointToPoints(1100) = %v, want 11", got)
	}
}

func TestDatetime(t *testing.T) {
	if _, ok := Datetime("2024-03-01T10:30:00Z"); !ok {
		t.Error("RFC 3339 timestamp should parse")
	}
	if _, ok := Datetime("2024-03-01T10:30:00"); !ok {
		t.Error("zoneless timestamp should parse")
	}
	if _, ok := Datetime("03/01/2024"); ok {
		t.Error("slash date should not parse")
	}
}
