package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-raman/internal/testutil"
	"github.com/cwbudde/algo-raman/spectrum"
)

func Example() {
	// Two Raman bands on a 400-3200 cm^-1 axis.
	axis := testutil.Ramp(1024, 400, 2.7370)
	trace := testutil.GaussianTrace(1024, []float64{200, 700}, []float64{1, 0.4}, []float64{5, 5})

	s, err := spectrum.New(axis, trace)
	if err != nil {
		fmt.Println(err)
		return
	}

	bands, err := s.Normalize().NMostProminentWavenumbers(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, w := range bands {
		fmt.Printf("band at %.0f cm^-1\n", w)
	}

	fingerprint := s.Between(400, 1800)
	fmt.Printf("fingerprint region: %d samples\n", fingerprint.Len())

	// Output:
	// band at 947 cm^-1
	// band at 2316 cm^-1
	// fingerprint region: 511 samples
}
