package utils

// PartialRatio calculates a 0-100 similarity score between two strings by
// sliding the shorter one across the longer one and keeping the best
// alignment. A score of 100 means the shorter string appears verbatim
// inside the longer one.
func PartialRatio(s1, s2 string) int {
	shorter := []rune(s1)
	longer := []rune(s2)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		dist := levenshteinDistance(shorter, longer[i:i+len(shorter)])
		score := 100 - (100*dist)/len(shorter)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// levenshteinDistance calculates the edit distance between two rune slices
// using two rows instead of the full matrix.
func levenshteinDistance(r1, r2 []rune) int {
	n, m := len(r1), len(r2)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
