package printer

import "fmt"

// foldThreshold is the longest run of consecutive, fully unchanged aligned
// rows that is still printed in full; a longer run is collapsed into a
// single "@@ folded N identical lines @@" marker (§4.7), unless folding is
// disabled.
const foldThreshold = 8

// foldMarker renders the placeholder line for a folded run of n identical
// rows.
func foldMarker(n int) string {
	return fmt.Sprintf("@@ folded %d identical lines @@", n)
}
