package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.50", 1250, true},
		{"12,50", 1250, true},
		{"5", 500, true},
		{"0.01", 1, true},
		{".5", 50, true},
		{"12.344", 1234, true}, // third decimal below 5 rounds down
		{"12.345", 1235, true}, // half rounds up
		{"12.346", 1235, true}, // rounds up
		{" 7.25 ", 725, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12.5.0", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"12a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("Parse(%q) failed: %v", tt.in, err)
				}
				if got.Cents != tt.cents {
					t.Errorf("Parse(%q) = %d cents, want %d", tt.in, got.Cents, tt.cents)
				}
			} else {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("Parse(%q) = %v, want ErrInvalidAmount", tt.in, err)
				}
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{1250, "12.50"},
		{1975, "19.75"},
		{5, "0.05"},
		{100, "1.00"},
	}

	for _, tt := range tests {
		got := Money{Cents: tt.cents}.String()
		if got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	a := Money{Cents: 1250}
	b := Money{Cents: 725}
	if got := a.Add(b); got.Cents != 1975 {
		t.Errorf("Add = %d, want 1975", got.Cents)
	}
}
