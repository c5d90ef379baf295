package catalog

import "math/rand/v2"

// Sample draws WordsPerRound words (fewer if words is shorter).
func Sample(words []string) []string {
	return SampleN(words, WordsPerRound)
}

// SampleN returns min(n, len(words)) distinct elements of words chosen
// uniformly without replacement, in random order. words is not modified.
func SampleN(words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	if n <= 0 {
		return []string{}
	}

	// Floyd's algorithm: n index draws, no copy of the source slice.
	picked := make(map[int]struct{}, n)
	out := make([]string, 0, n)
	for j := len(words) - n; j < len(words); j++ {
		i := rand.IntN(j + 1)
		if _, dup := picked[i]; dup {
			i = j
		}
		picked[i] = struct{}{}
		out = append(out, words[i])
	}
	rand.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
	return out
}
