package trace_test

import (
	"fmt"

	"github.com/cwbudde/algo-raman/stats/trace"
)

func ExampleCalculate() {
	st := trace.Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	fmt.Printf("mean   %.1f\n", st.Mean)
	fmt.Printf("median %.1f\n", st.Median)
	fmt.Printf("std    %.1f\n", st.Std)
	fmt.Printf("range  [%.0f, %.0f]\n", st.Min, st.Max)

	// Output:
	// mean   5.0
	// median 4.5
	// std    2.0
	// range  [2, 9]
}
