package extract

import "iter"

// BalancedBlocks yields every maximal substring of span that starts with open and
// ends with the close that balances it, in source order. Only the one delimiter
// kind is counted. A block still open at the end of span is discarded, and a
// stray close outside any block is ignored.
//
// The sequence is lazy and restartable: each range over it scans span again.
func BalancedBlocks(span string, open, close byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		depth := 0
		start := -1
		for i := 0; i < len(span); i++ {
			switch span[i] {
			case open:
				if depth == 0 {
					start = i
				}
				depth++
			case close:
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					if !yield(span[start : i+1]) {
						return
					}
					start = -1
				}
			}
		}
	}
}

// Blocks collects BalancedBlocks into a slice.
func Blocks(span string, open, close byte) []string {
	var blocks []string
	for b := range BalancedBlocks(span, open, close) {
		blocks = append(blocks, b)
	}
	return blocks
}
