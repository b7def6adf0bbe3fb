// Package flyweight shares immutable pre-rendered sprites between many entities.
//
// Entities keep only their extrinsic state (position, velocity, alpha) plus a Key
// describing the intrinsic look. A Cache turns equal keys into one shared Resource,
// built lazily on first request and reused for the rest of the session.
package flyweight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// ErrInvalidKey is returned for keys with a non-positive size or an unsupported shape.
var ErrInvalidKey = errors.New("flyweight: invalid resource key")

// Shape selects the silhouette of a shared sprite.
// The zero value is deliberately not a valid shape.
type Shape uint8

const (
	ShapeCircle Shape = iota + 1
	ShapeRect
)

// String returns the lowercase shape name used in config files.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	return s == ShapeCircle || s == ShapeRect
}

// ParseShape parses a shape name. "square" is accepted as an alias for "rect".
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return ShapeCircle, nil
	case "rect", "square":
		return ShapeRect, nil
	default:
		return 0, fmt.Errorf("unknown shape %q: %w", name, ErrInvalidKey)
	}
}

// Key describes the intrinsic state of a sprite. It is a comparable value type,
// so two keys built independently with the same fields select the same Resource.
type Key struct {
	Shape Shape
	Size  int
	Color core.RGB
}

// NewKey builds a key from its parts.
func NewKey(shape Shape, size int, color core.RGB) Key {
	return Key{Shape: shape, Size: size, Color: color}
}

// Validate checks the input constraints of Cache.Get.
func (k Key) Validate() error {
	if !k.Shape.Valid() {
		return fmt.Errorf("%w: unsupported shape %s", ErrInvalidKey, k.Shape)
	}
	if k.Size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidKey, k.Size)
	}
	return nil
}

// String formats the key as shape/size/#rrggbb.
func (k Key) String() string {
	return fmt.Sprintf("%s/%d/#%02x%02x%02x", k.Shape, k.Size, k.Color.R, k.Color.G, k.Color.B)
}

// less orders keys by shape, size, then color channels.
func (k Key) less(o Key) bool {
	if k.Shape != o.Shape {
		return k.Shape < o.Shape
	}
	if k.Size != o.Size {
		return k.Size < o.Size
	}
	if k.Color.R != o.Color.R {
		return k.Color.R < o.Color.R
	}
	if k.Color.G != o.Color.G {
		return k.Color.G < o.Color.G
	}
	return k.Color.B < o.Color.B
}
