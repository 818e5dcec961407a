// Command rdfc computes the rdFC pattern of a five-minute EEG epoch of an
// electrode triplet and its match scores against three reference patterns.
//
// Usage:
//
//	rdfc --input FILE --sampling-rate N --notch 50|60 [flags]
//	rdfc filters --sampling-rate N --notch 50|60
//
// Before the pattern is computed the signals are bandpass filtered from
// 0.5 Hz to 70 Hz and notch filtered at the mains frequency.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-rdfc/cmd/rdfc/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", commands.UserMessage(err))
		os.Exit(1)
	}
}
