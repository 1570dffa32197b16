package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/hupe1980/hybridvec/lane"
)

var (
	// ErrCorrupt is returned for frames that cannot be decoded.
	ErrCorrupt = errors.New("codec: corrupt frame")

	// ErrUnsupportedElement is returned for frames holding a different
	// element type than the one requested.
	ErrUnsupportedElement = errors.New("codec: unsupported element type")

	// ErrUnknownCompression is returned for unknown compression identifiers.
	ErrUnknownCompression = errors.New("codec: unknown compression")
)

// Version is the binary frame format version.
const Version = 1

var magic = [4]byte{'H', 'V', 'E', 'C'}

// Frame layout (little-endian):
//
//	[0:4]   magic "HVEC"
//	[4]     version
//	[5]     element kind (reflect.Kind)
//	[6]     flags, bit 0 set for row orientation
//	[7]     compression
//	[8:12]  capacity bound
//	[12:16] size
//	[16:]   payload block
const headerSize = 16

const flagRow = 1 << 0

// Header describes a binary frame.
type Header struct {
	Elem        reflect.Kind
	Row         bool
	Compression Compression
	Bound       uint32
	Size        uint32
}

// ElemKind returns the frame element kind for T.
func ElemKind[T lane.Number]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// Encode writes elems as a frame. Elem and Size are taken from T and
// elems; the other header fields from h.
func Encode[T lane.Number](h Header, elems []T) ([]byte, error) {
	kind := ElemKind[T]()

	payload, err := binary.Append(nil, binary.LittleEndian, elems)
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}

	block, err := compressBlock(payload, h.Compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+len(block))
	copy(out, magic[:])
	out[4] = Version
	out[5] = byte(kind)
	if h.Row {
		out[6] |= flagRow
	}
	out[7] = byte(h.Compression)
	binary.LittleEndian.PutUint32(out[8:], h.Bound)
	binary.LittleEndian.PutUint32(out[12:], uint32(len(elems)))

	return append(out, block...), nil
}

// DecodeHeader parses the header of a frame without touching the payload.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if [4]byte(data[0:4]) != magic {
		return Header{}, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if data[4] != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[4])
	}

	h := Header{
		Elem:        reflect.Kind(data[5]),
		Row:         data[6]&flagRow != 0,
		Compression: Compression(data[7]),
		Bound:       binary.LittleEndian.Uint32(data[8:]),
		Size:        binary.LittleEndian.Uint32(data[12:]),
	}
	if h.Compression > CompressionZSTD {
		return Header{}, fmt.Errorf("%w: %d", ErrUnknownCompression, h.Compression)
	}
	return h, nil
}

// Decode parses a frame holding elements of type T. The header is checked
// against T before the payload is decompressed; use DecodeHeader first to
// bound Size when data is untrusted.
func Decode[T lane.Number](data []byte) (Header, []T, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	if kind := ElemKind[T](); h.Elem != kind {
		return Header{}, nil, fmt.Errorf("%w: frame holds %s, want %s", ErrUnsupportedElement, h.Elem, kind)
	}

	want := int(h.Size) * lane.Size[T]()
	if uint64(want) > math.MaxUint32 {
		return Header{}, nil, fmt.Errorf("%w: %d elements do not fit one block", ErrCorrupt, h.Size)
	}

	payload, consumed, err := decompressBlock(data[headerSize:], h.Compression, want)
	if err != nil {
		return Header{}, nil, err
	}
	if headerSize+consumed != len(data) {
		return Header{}, nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(data)-headerSize-consumed)
	}

	elems := make([]T, h.Size)
	if _, err := binary.Decode(payload, binary.LittleEndian, elems); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return h, elems, nil
}
