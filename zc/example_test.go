// SPDX-License-Identifier: EPL-2.0

package zc_test

import (
	"fmt"

	"gozc/zc"
)

// Example_slopes derives the per-dot slope of a short frequency sweep.
func Example_slopes() {
	times := []float64{0, 0.001, 0.002, 0.003}
	freqs := []float64{160000, 80000, 40000, 20000} // one octave down per ms

	z, err := zc.New(times, freqs, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.0f octaves/sec\n", z.Slopes(false)[0])
	// Output: 1000 octaves/sec
}

// ExampleZeroCross_Window extracts the dots visible in a 0.3s view.
func ExampleZeroCross_Window() {
	var times, freqs []float64
	for i := 0; i < 10; i++ {
		times = append(times, float64(i)*0.1)
		freqs = append(freqs, 40000)
	}

	z, err := zc.New(times, freqs, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	w := z.Window(0.15, 0.3)
	fmt.Printf("%.2f .. %.2f (%d dots)\n", w.Times()[0], w.Times()[w.Len()-1], w.Len())
	// Output: 0.15 .. 0.45 (5 dots)
}
