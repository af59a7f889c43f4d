// Package extract implements the text-scanning primitives used to pull structural
// facts out of unparsed TypeScript source.
//
// Nothing here tokenizes. Nesting is tracked with a single counter shared by the
// three delimiter pairs {}, [] and (); kinds are never matched against each other,
// so "{)" is as balanced as "{}". Delimiters inside string literals or comments are
// counted like any other, which is an accepted limitation.
//
// All offsets are byte offsets. The delimiters are ASCII and never occur inside a
// multi-byte UTF-8 sequence, so scanning bytes gives the same depths as scanning runes.
package extract

// DepthDelta returns +1 for an opening delimiter, -1 for a closing one and 0 otherwise.
func DepthDelta(b byte) int {
	switch b {
	case '{', '[', '(':
		return 1
	case '}', ']', ')':
		return -1
	default:
		return 0
	}
}

// Depths returns, for every byte offset of s, the nesting depth after consuming
// that byte. Depth can go negative when s has more closers than openers.
func Depths(s string) []int {
	depths := make([]int, len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		depth += DepthDelta(s[i])
		depths[i] = depth
	}
	return depths
}

// MatchingClose returns the offset of the delimiter that brings the shared counter
// back to the depth it had before s[open]. It returns -1 if s[open] is not an
// opener or the span ends first.
func MatchingClose(s string, open int) int {
	if open < 0 || open >= len(s) || DepthDelta(s[open]) != 1 {
		return -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		depth += DepthDelta(s[i])
		if depth == 0 {
			return i
		}
	}
	return -1
}

// Shallow returns a copy of span in which every byte nested two or more levels
// deep is replaced by a space. Delimiters crossing between depth 1 and depth 2 are
// kept, so a match found in the shallow copy has the same offsets in span.
//
// For an object literal "{a: 1, b: {c: 2}}" the result is "{a: 1, b: {    }}":
// fields of the outer object stay visible, fields of inner objects do not.
func Shallow(span string) string {
	out := []byte(span)
	depth := 0
	for i := 0; i < len(out); i++ {
		before := depth
		depth += DepthDelta(out[i])
		if before >= 2 && depth >= 2 {
			out[i] = ' '
		}
	}
	return string(out)
}
