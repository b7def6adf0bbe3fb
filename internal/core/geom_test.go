package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

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

func TestRectInflate(t *testing.T) {
	got := NewRect(5, 5, 4, 2).Inflate(2, 1)
	expected := NewRect(3, 4, 8, 4)
	if got != expected {
		t.Errorf("Inflate() = %+v, expected %+v", got, expected)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name          string
		v, bound, exp float64
	}{
		{"inside", 42, 100, 42},
		{"past far edge", 108, 100, 8},
		{"exactly at bound", 100, 100, 0},
		{"negative", -2, 100, 98},
		{"far negative", -250, 100, 50},
		{"zero bound disables", 123, 0, 123},
		{"negative bound disables", -7, -1, -7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Wrap(tc.v, tc.bound)
			if math.Abs(result-tc.exp) > 1e-9 {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.bound, result, tc.exp)
			}
		})
	}
}

func TestWrapStaysBelowBound(t *testing.T) {
	result := Wrap(-1e-18, 80)
	if result < 0 || result >= 80 {
		t.Errorf("Wrap(-1e-18, 80) = %v, expected value in [0, 80)", result)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}

	sum := v.Add(Vec2{X: 1, Y: -1})
	if sum != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add() = %v, expected {4 3}", sum)
	}

	scaled := v.Scale(2)
	if scaled != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale(2) = %v, expected {6 8}", scaled)
	}

	n := v.Normalized()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalized().Len() = %v, expected 1", n.Len())
	}

	if (Vec2{}).Normalized() != (Vec2{}) {
		t.Error("Normalized() of zero vector should be zero")
	}
}
