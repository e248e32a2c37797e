package ugen_test

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

func ExampleParam() {
	lfo := ugen.NewSource(core.WithBlockSize(4))
	lfo.SetData([]float64{100, 200, 300, 400})

	cutoff := ugen.Const(1000)
	fmt.Println(cutoff.At(2), cutoff.Control())

	cutoff.SetNode(lfo)
	fmt.Println(cutoff.At(2), cutoff.Control())

	// Output:
	// 1000 1000
	// 300 100
}

func ExampleAdd() {
	a := ugen.NewSource(core.WithBlockSize(3))
	b := ugen.NewSource(core.WithBlockSize(3))
	a.SetData([]float64{1, 2, 3})
	b.Fill(0.5)

	fmt.Println(ugen.Add(a, b).Samples())
	fmt.Println(ugen.Scale(a, 2).Samples())

	// Output:
	// [1.5 2.5 3.5]
	// [2 4 6]
}
