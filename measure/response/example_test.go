package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/iir"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
	"github.com/cwbudde/algo-ugen/measure/response"
)

func ExampleToneLevelDB() {
	src := ugen.NewSource(core.WithSampleRate(48000), core.WithBlockSize(64))
	hp, err := iir.NewHighPass(src, ugen.Const(1000))
	if err != nil {
		panic(err)
	}

	level, err := response.ToneLevelDB(src, hp, 1000, 20, 150)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f dB\n", level)
	// Output:
	// -3.0 dB
}
