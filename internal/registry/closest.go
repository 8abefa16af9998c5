package registry

// maxSuggestDistance is the maximum edit distance for a long name
// to be suggested in place of an unknown one.
const maxSuggestDistance = 2

// Closest returns the declared long name closest to name, if it is
// within a small edit distance. Ties go to the first declared option.
func (r *Registry) Closest(name string) (string, bool) {
	best, bestDist := "", -1

	for _, opt := range r.options {
		dist := levenshtein(name, opt.Long())
		if bestDist < 0 || dist < bestDist {
			best, bestDist = opt.Long(), dist
		}
	}

	if bestDist < 0 || bestDist > maxSuggestDistance || bestDist >= len([]rune(name)) {
		return "", false
	}

	return best, true
}

// levenshtein returns the edit distance between two strings, in runes.
func levenshtein(str, tgt string) int {
	src, dst := []rune(str), []rune(tgt)

	if len(src) == 0 {
		return len(dst)
	}

	if len(dst) == 0 {
		return len(src)
	}

	prev := make([]int, len(dst)+1)
	curr := make([]int, len(dst)+1)

	for j := range prev {
		prev[j] = j
	}

	for i, sc := range src {
		curr[0] = i + 1

		for j, tc := range dst {
			cost := 1
			if sc == tc {
				cost = 0
			}

			curr[j+1] = min(prev[j]+cost, prev[j+1]+1, curr[j]+1)
		}

		prev, curr = curr, prev
	}

	return prev[len(dst)]
}
