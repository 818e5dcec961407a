package channel_test

import (
	"fmt"

	"github.com/cwbudde/algo-rdfc/stats/channel"
)

func ExampleSummarize() {
	s := channel.Summarize([]float64{1, -1, 1, -1})
	fmt.Printf("dc=%.1f rms=%.1f flat=%v\n", s.DC, s.RMS, s.Flat)

	// Output:
	// dc=0.0 rms=1.0 flat=false
}
