package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectCenteredOn(t *testing.T) {
	r := NewRect(0, 0, 10, 4).CenteredOn(20, 12)
	if r.X != 15 || r.Y != 10 {
		t.Errorf("CenteredOn: expected (15, 10), got (%d, %d)", r.X, r.Y)
	}
	if r.W != 10 || r.H != 4 {
		t.Errorf("CenteredOn must keep the size, got %dx%d", r.W, r.H)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(1, 1, 6, 4).Inset(1)
	if r != NewRect(2, 2, 4, 2) {
		t.Errorf("Inset(1): got %+v", r)
	}

	if r := NewRect(0, 0, 1, 1).Inset(2); r.W != 0 || r.H != 0 {
		t.Errorf("Inset past the size should be empty, got %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
