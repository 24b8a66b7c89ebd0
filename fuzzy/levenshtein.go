package fuzzy

// Levenshtein computes the edit distance between a and b over runes
// using the classic two-row dynamic program: only the previous and
// current rows are materialized.
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ar, br := []rune(a), []rune(b)
	// Keep the inner dimension the smaller of the two.
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	if len(br) == 0 {
		return len(ar)
	}
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			ins := curr[j] + 1
			del := prev[j+1] + 1
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = min3(ins, del, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		return c
	}
	return a
}
