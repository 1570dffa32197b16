package hybridvec

import (
	"fmt"

	"github.com/hupe1980/hybridvec/codec"
)

// MarshalBinary encodes v as an uncompressed codec frame.
func (v *Vector[T, N, O]) MarshalBinary() ([]byte, error) {
	return v.EncodeCompressed(codec.CompressionNone)
}

// EncodeCompressed encodes v as a codec frame with the given payload
// compression.
func (v *Vector[T, N, O]) EncodeCompressed(c codec.Compression) ([]byte, error) {
	h := codec.Header{
		Row:         isRow[O](),
		Compression: c,
		Bound:       uint32(bound[N]()),
	}
	return codec.Encode(h, v.data[:v.size])
}

// UnmarshalBinary replaces the contents of v with a decoded frame. The
// frame may come from a vector with a different bound as long as its size
// fits N. v is unchanged when an error is returned.
func (v *Vector[T, N, O]) UnmarshalBinary(data []byte) error {
	h, err := codec.DecodeHeader(data)
	if err != nil {
		return err
	}
	if err := checkSize(int(h.Size), bound[N]()); err != nil {
		return reject(OpAssign, err)
	}

	h, elems, err := codec.Decode[T](data)
	if err != nil {
		return err
	}
	if h.Row != isRow[O]() {
		return reject(OpAssign, fmt.Errorf("%w: frame orientation does not match", ErrIncompatibleOperands))
	}
	return v.AssignSlice(elems)
}

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T, N, O]) MarshalJSON() ([]byte, error) {
	return codec.MarshalElems(codec.Default, v.Data())
}

// UnmarshalJSON replaces the contents of v with a JSON array.
func (v *Vector[T, N, O]) UnmarshalJSON(data []byte) error {
	elems, err := codec.UnmarshalElems[T](codec.Default, data)
	if err != nil {
		return err
	}
	return v.AssignSlice(elems)
}
