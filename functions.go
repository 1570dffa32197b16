package hybridvec

// Reset zeroes every live element of v.
func Reset[T Scalar, N Bound, O Orientation](v *Vector[T, N, O]) {
	v.Reset()
}

// Clear drops every element of v.
func Clear[T Scalar, N Bound, O Orientation](v *Vector[T, N, O]) {
	v.Clear()
}

// IsDefault reports whether v is in its default state, i.e. empty.
func IsDefault[T Scalar, N Bound, O Orientation](v *Vector[T, N, O]) bool {
	return v.Size() == 0
}

// Swap exchanges the contents of a and b. It cannot fail.
func Swap[T Scalar, N Bound, O Orientation](a, b *Vector[T, N, O]) {
	a.Swap(b)
}

// Move transfers the contents of src into dst. src keeps its contents.
func Move[T Scalar, N Bound, O Orientation](dst, src *Vector[T, N, O]) {
	dst.CopyFrom(src)
}
