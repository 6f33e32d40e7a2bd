package textutil

// Shingles returns every contiguous substring of length k in left-to-right
// order. Text shorter than k, or a non-positive k, yields an empty slice.
// Repeated substrings are kept; callers that take a minimum over the result
// are unaffected by duplicates.
func Shingles(text string, k int) []string {
	if k <= 0 || len(text) < k {
		return []string{}
	}
	out := make([]string, 0, len(text)-k+1)
	for i := 0; i+k <= len(text); i++ {
		out = append(out, text[i:i+k])
	}
	return out
}
