package hybridvec_test

import (
	"fmt"

	"github.com/hupe1980/hybridvec"
)

func Example() {
	v, _ := hybridvec.FromSlice[float64, hybridvec.N8, hybridvec.Column]([]float64{1, 2, 3})
	w, _ := hybridvec.NewFilled[float64, hybridvec.N8, hybridvec.Column](3, 10)

	sum, _ := v.Add(w)
	_ = v.Assign(sum)
	fmt.Println(v)

	_ = v.MulAssign(v)
	fmt.Println(v)

	v.DivScalar(2)
	fmt.Println(v, v.Size(), v.Bound())
	// Output:
	// [11 12 13]
	// [121 144 169]
	// [60.5 72 84.5] 3 8
}

func ExampleVector_Resize() {
	v, _ := hybridvec.New[int32, hybridvec.N4, hybridvec.Row](2)

	err := v.Resize(5, true)
	fmt.Println(err)

	_ = v.Resize(4, true)
	fmt.Println(v.Size())
	// Output:
	// capacity exceeded: requested size 5, limit 4
	// 4
}

func ExampleSparseVector() {
	v, _ := hybridvec.FromSlice[float64, hybridvec.N4, hybridvec.Column]([]float64{1, 2, 3})
	s, _ := hybridvec.NewSparse[float64, hybridvec.Column](3)
	_ = s.Set(1, 5)

	a := v.Clone()
	_ = a.AssignFrom(s)
	fmt.Println(a)

	m := v.Clone()
	_ = m.MulAssign(s)
	fmt.Println(m)
	// Output:
	// [1 5 3]
	// [0 10 0]
}

func ExampleResolve() {
	col := hybridvec.ShapeOf[float32, hybridvec.N4, hybridvec.Column]()
	row := hybridvec.ShapeOf[float32, hybridvec.N3, hybridvec.Row]()

	outer, _ := hybridvec.Resolve(hybridvec.OpMul, col, row)
	inner, _ := hybridvec.Resolve(hybridvec.OpMul, row, col)
	fmt.Println(outer, inner)
	// Output:
	// matrix[4x3] scalar
}
