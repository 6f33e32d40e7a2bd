package engine

// KV is a keyed record.
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// Pair holds the matched values of an equi-join.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Join performs an inner equi-join. Output follows left order; a left record
// matching several right records yields one row per match in right order.
// Left records without a match are dropped.
func Join[K comparable, A, B any](left []KV[K, A], right []KV[K, B]) []KV[K, Pair[A, B]] {
	index := make(map[K][]B, len(right))
	for _, r := range right {
		index[r.Key] = append(index[r.Key], r.Value)
	}
	out := make([]KV[K, Pair[A, B]], 0, len(left))
	for _, l := range left {
		for _, r := range index[l.Key] {
			out = append(out, KV[K, Pair[A, B]]{Key: l.Key, Value: Pair[A, B]{Left: l.Value, Right: r}})
		}
	}
	return out
}

// Rekey maps each record to a new key and value.
func Rekey[K1, K2 comparable, V1, V2 any](in []KV[K1, V1], fn func(K1, V1) (K2, V2)) []KV[K2, V2] {
	out := make([]KV[K2, V2], len(in))
	for i, kv := range in {
		k, v := fn(kv.Key, kv.Value)
		out[i] = KV[K2, V2]{Key: k, Value: v}
	}
	return out
}
