// Package codec centralizes vector encoding.
//
// Text encodings go through a Codec (JSON, go-json). Binary encodings use a
// self-describing frame: a fixed header recording element kind, orientation,
// capacity bound, size and compression, followed by a little-endian element
// payload that may be LZ4 or ZSTD compressed.
//
// Changing the frame layout is a breaking change: bump Version.
package codec

import (
	"fmt"
	"math"
	"reflect"

	"github.com/hupe1980/hybridvec/lane"
)

// Codec encodes element arrays as text. Implementations must be safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used by Vector.MarshalJSON and UnmarshalJSON.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MarshalElems encodes elems as an array with c, or Default if c is nil.
// A nil slice encodes as an empty array, never as null. Byte elements are
// written as numbers rather than the base64 string JSON uses for []byte.
func MarshalElems[T lane.Number](c Codec, elems []T) ([]byte, error) {
	if c == nil {
		c = Default
	}
	var v any = elems
	switch {
	case elems == nil:
		v = []T{}
	case isByte[T]():
		wide := make([]uint16, len(elems))
		for i, x := range elems {
			wide[i] = uint16(x)
		}
		v = wide
	}
	data, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return data, nil
}

// UnmarshalElems decodes an array written by MarshalElems.
func UnmarshalElems[T lane.Number](c Codec, data []byte) ([]T, error) {
	if c == nil {
		c = Default
	}
	if !isByte[T]() {
		var elems []T
		if err := c.Unmarshal(data, &elems); err != nil {
			return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
		}
		return elems, nil
	}

	var wide []uint16
	if err := c.Unmarshal(data, &wide); err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	if wide == nil {
		return nil, nil
	}
	elems := make([]T, len(wide))
	for i, x := range wide {
		if x > math.MaxUint8 {
			return nil, fmt.Errorf("codec %s: element %d: %d overflows uint8", c.Name(), i, x)
		}
		elems[i] = T(x)
	}
	return elems, nil
}

func isByte[T lane.Number]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Uint8
}
