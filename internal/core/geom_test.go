package core

import "testing"

func TestRectHitTest(t *testing.T) {
	r := NewRect(10, 10, 100, 80)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 50, 50, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (inclusive)", 110, 90, true},
		{"right edge", 110, 40, true},
		{"just past right edge", 111, 40, false},
		{"just below bottom edge", 40, 91, false},
		{"outside left", 9, 15, false},
		{"outside top", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.HitTest(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("HitTest(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		sx, sy   float64
		expected Rect
	}{
		{"identity", NewRect(3, 4, 5, 6), 1, 1, NewRect(3, 4, 5, 6)},
		{"canvas to 80x24", NewRect(512, 400, 100, 100), 80.0 / 1024, 24.0 / 860, NewRect(40, 11, 8, 3)},
		{"never collapses", NewRect(0, 0, 1, 1), 0.01, 0.01, NewRect(0, 0, 1, 1)},
		{"empty stays empty", NewRect(0, 0, 0, 0), 2, 2, NewRect(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Scale(tc.sx, tc.sy)
			if got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Enemy "); !ok || c != ColorEnemy {
		t.Errorf("ParseColor(enemy) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("purple"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
