package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCenteredIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 22, 12, NewRect(29, 6, 22, 12)},
		{"offset outer", NewRect(10, 2, 20, 10), 10, 4, NewRect(15, 5, 10, 4)},
		{"larger than outer", NewRect(0, 0, 10, 5), 30, 10, NewRect(0, 0, 30, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.outer.CenteredIn(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredIn(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Bright_Green ")
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if c != ColorBrightGreen {
		t.Errorf("ParseColor() = %d, expected %d", c, ColorBrightGreen)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestActionNames(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
	if ParseAction("Jump") != ActionNone {
		t.Error("Unknown action names should parse to ActionNone")
	}

	directional := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range directional {
		if !a.IsDirectional() {
			t.Errorf("%v should be directional", a)
		}
	}
	if ActionRestart.IsDirectional() || ActionNone.IsDirectional() {
		t.Error("Restart and None should not be directional")
	}
}
