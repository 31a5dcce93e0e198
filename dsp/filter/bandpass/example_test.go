package bandpass_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-linefind/dsp/filter/bandpass"
)

func ExampleClassify() {
	kind, err := bandpass.Classify(1000, 5, math.Inf(1))
	fmt.Println(kind, err)

	_, err = bandpass.Classify(1000, 0, math.Inf(1))
	fmt.Println(err)
	// Output:
	// highpass <nil>
	// bandpass: invalid filter range
}
