package lane

import "github.com/ajroetker/go-highway/hwy"

// Pack is one lane's worth of elements held in hwy vectors. A lane wider
// than the hwy register width is split across several vectors; only the
// first Lanes() elements are meaningful.
type Pack[T Number] struct {
	n     int
	parts []hwy.Vec[T]
}

// step returns the number of elements one hwy vector holds.
func step[T Number]() int {
	return max(hwy.MaxLanes[T](), 1)
}

// Load reads n consecutive elements starting at src[0]. n must not exceed
// len(src). A trailing part shorter than the hwy width is loaded through a
// zeroed buffer.
func Load[T Number](src []T, n int) Pack[T] {
	m := step[T]()
	p := Pack[T]{n: n, parts: make([]hwy.Vec[T], 0, (n+m-1)/m)}
	for off := 0; off < n; off += m {
		if off+m <= n {
			p.parts = append(p.parts, hwy.Load(src[off:off+m]))
			continue
		}
		buf := make([]T, m)
		copy(buf, src[off:n])
		p.parts = append(p.parts, hwy.Load(buf))
	}
	return p
}

// Broadcast returns a pack with x in each of its n lanes.
func Broadcast[T Number](x T, n int) Pack[T] {
	m := step[T]()
	p := Pack[T]{n: n, parts: make([]hwy.Vec[T], (n+m-1)/m)}
	for k := range p.parts {
		p.parts[k] = hwy.Set(x)
	}
	return p
}

// Zero returns a pack of n zero lanes.
func Zero[T Number](n int) Pack[T] {
	m := step[T]()
	p := Pack[T]{n: n, parts: make([]hwy.Vec[T], (n+m-1)/m)}
	for k := range p.parts {
		p.parts[k] = hwy.Zero[T]()
	}
	return p
}

// Lanes returns the number of active lanes.
func (p Pack[T]) Lanes() int {
	return p.n
}

// At returns lane i, which must be below Lanes().
func (p Pack[T]) At(i int) T {
	if i < 0 || i >= p.n {
		panic("lane: pack index out of range")
	}
	m := step[T]()
	buf := make([]T, m)
	hwy.Store(p.parts[i/m], buf)
	return buf[i%m]
}

// Store writes the active lanes to dst[0:Lanes()].
func (p Pack[T]) Store(dst []T) {
	p.StorePartial(dst, p.n)
}

// StorePartial writes the first n lanes to dst[0:n]. The last vector is
// written through a mask so nothing past dst[n-1] is touched.
func (p Pack[T]) StorePartial(dst []T, n int) {
	m := step[T]()
	for k, v := range p.parts {
		off := k * m
		if off >= n {
			return
		}
		if rem := n - off; rem < m {
			mask := hwy.LessThan(hwy.Iota[T](), hwy.Set(T(rem)))
			hwy.MaskStore(mask, v, dst[off:n])
			return
		}
		hwy.Store(v, dst[off:off+m])
	}
}

// Add returns p + q lane by lane.
func (p Pack[T]) Add(q Pack[T]) Pack[T] {
	return p.zip(q, hwy.Add[T])
}

// Sub returns p - q lane by lane.
func (p Pack[T]) Sub(q Pack[T]) Pack[T] {
	return p.zip(q, hwy.Sub[T])
}

// Mul returns p * q lane by lane.
func (p Pack[T]) Mul(q Pack[T]) Pack[T] {
	return p.zip(q, hwy.Mul[T])
}

// Div returns p / q lane by lane. float32 and float64 lanes use hwy.Div.
// Other lanes are divided one element at a time, so integer lanes panic on
// a zero divisor like the scalar operator.
func (p Pack[T]) Div(q Pack[T]) Pack[T] {
	switch a := any(p).(type) {
	case Pack[float32]:
		return any(a.zip(any(q).(Pack[float32]), hwy.Div[float32])).(Pack[T])
	case Pack[float64]:
		return any(a.zip(any(q).(Pack[float64]), hwy.Div[float64])).(Pack[T])
	}

	n := min(p.n, q.n)
	num := make([]T, n)
	den := make([]T, n)
	p.StorePartial(num, n)
	q.StorePartial(den, n)
	for i := range num {
		num[i] /= den[i]
	}
	return Load(num, n)
}

// Scale returns p with every lane multiplied by s.
func (p Pack[T]) Scale(s T) Pack[T] {
	return p.zip(Broadcast(s, p.n), hwy.Mul[T])
}

// Sum returns the horizontal sum of the active lanes.
func (p Pack[T]) Sum() T {
	m := step[T]()
	var s T
	for k, v := range p.parts {
		if rem := p.n - k*m; rem < m {
			buf := make([]T, m)
			hwy.Store(v, buf)
			for _, x := range buf[:rem] {
				s += x
			}
			break
		}
		s += hwy.ReduceSum(v)
	}
	return s
}

func (p Pack[T]) zip(q Pack[T], f func(a, b hwy.Vec[T]) hwy.Vec[T]) Pack[T] {
	out := Pack[T]{n: min(p.n, q.n), parts: make([]hwy.Vec[T], min(len(p.parts), len(q.parts)))}
	for k := range out.parts {
		out.parts[k] = f(p.parts[k], q.parts[k])
	}
	return out
}
