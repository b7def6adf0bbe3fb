package flyweight

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

var (
	red  = core.NewRGB(255, 0, 0)
	blue = core.NewRGB(0, 0, 255)
)

func TestCacheIdentity(t *testing.T) {
	c := NewCache()
	key := NewKey(ShapeCircle, 10, red)

	first, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if c.Count() != 1 {
		t.Errorf("Count() after first Get = %d, expected 1", c.Count())
	}

	// A key built independently with the same fields is the same entry
	second, err := c.Get(Key{Shape: ShapeCircle, Size: 10, Color: core.RGB{R: 255}})
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if first != second {
		t.Error("Get() with equal keys returned distinct resources")
	}
	if c.Count() != 1 {
		t.Errorf("Count() after repeated Get = %d, expected 1", c.Count())
	}
}

func TestCacheKeySensitivity(t *testing.T) {
	c := NewCache()

	redCircle, _ := c.Get(NewKey(ShapeCircle, 10, red))
	blueCircle, _ := c.Get(NewKey(ShapeCircle, 10, blue))

	if redCircle == blueCircle {
		t.Error("Get() returned the same resource for different colors")
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", c.Count())
	}

	// Shape and size also discriminate
	c.MustGet(NewKey(ShapeRect, 10, red))
	c.MustGet(NewKey(ShapeCircle, 11, red))
	if c.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", c.Count())
	}
}

func TestCacheInvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{"zero size", NewKey(ShapeCircle, 0, red)},
		{"negative size", NewKey(ShapeRect, -3, red)},
		{"zero shape", NewKey(0, 5, red)},
		{"unknown shape", NewKey(Shape(42), 5, red)},
		{"zero key", Key{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCache()
			res, err := c.Get(tc.key)
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Get(%v) error = %v, expected ErrInvalidKey", tc.key, err)
			}
			if res != nil {
				t.Errorf("Get(%v) returned a resource for an invalid key", tc.key)
			}
			if c.Count() != 0 {
				t.Errorf("Count() = %d, expected no partial entry", c.Count())
			}
		})
	}
}

func TestCacheZeroValue(t *testing.T) {
	var c Cache
	if c.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", c.Count())
	}

	res, err := c.Get(NewKey(ShapeRect, 2, blue))
	if err != nil {
		t.Fatalf("Get() on zero cache failed: %v", err)
	}
	if again := c.MustGet(NewKey(ShapeRect, 2, blue)); again != res {
		t.Error("zero-value cache did not share the resource")
	}
}

func TestCacheMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet() with invalid key should panic")
		}
	}()
	NewCache().MustGet(NewKey(ShapeCircle, 0, red))
}

func TestCacheKeysOrdered(t *testing.T) {
	c := NewCache()
	keys := []Key{
		NewKey(ShapeRect, 2, red),
		NewKey(ShapeCircle, 5, blue),
		NewKey(ShapeCircle, 3, red),
		NewKey(ShapeCircle, 3, blue),
	}
	for _, k := range keys {
		c.MustGet(k)
	}

	expected := []Key{
		NewKey(ShapeCircle, 3, blue),
		NewKey(ShapeCircle, 3, red),
		NewKey(ShapeCircle, 5, blue),
		NewKey(ShapeRect, 2, red),
	}
	got := c.Keys()
	if len(got) != len(expected) {
		t.Fatalf("Keys() returned %d keys, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Keys()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"circle", ShapeCircle, false},
		{"rect", ShapeRect, false},
		{"Square", ShapeRect, false},
		{" circle ", ShapeCircle, false},
		{"triangle", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseShape(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("ParseShape(%q) error = %v, expected ErrInvalidKey", tc.in, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseShape(%q) = %v, %v, expected %v", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	k := NewKey(ShapeCircle, 3, core.ColorSkyBlue)
	if k.String() != "circle/3/#87ceeb" {
		t.Errorf("String() = %q, expected %q", k.String(), "circle/3/#87ceeb")
	}
}
