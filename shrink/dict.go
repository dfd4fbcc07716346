package shrink

import "github.com/kestrel-labs/qcheck/stream"

// KV is a plain key/value pair — the materialized value type a Dict
// Shrinkable carries.
type KV[K any, V any] struct {
	Key K
	Val V
}

// Entry pairs a key Shrinkable with a value Shrinkable — the building block
// Dict shrinks over.
type Entry[K any, V any] struct {
	Key Shrinkable[K]
	Val Shrinkable[V]
}

// Dict shrinks a dictionary's entries: first the key multiset length-first
// (as Array does), then keys individually (dropping any candidate that
// would collide with a surviving key), then values individually.
func Dict[K comparable, V any](entries []Entry[K, V], minLen int) Shrinkable[[]KV[K, V]] {
	return New(entryValues(entries), func() stream.Stream[Shrinkable[[]KV[K, V]]] {
		return dictLengthShrinks(entries, minLen).
			Concat(dictKeyShrinks(entries, minLen)).
			Concat(dictValueShrinks(entries, minLen))
	})
}

func entryValues[K any, V any](entries []Entry[K, V]) []KV[K, V] {
	out := make([]KV[K, V], len(entries))
	for i, e := range entries {
		out[i] = KV[K, V]{Key: e.Key.Value, Val: e.Val.Value}
	}
	return out
}

func dictLengthShrinks[K comparable, V any](entries []Entry[K, V], minLen int) stream.Stream[Shrinkable[[]KV[K, V]]] {
	n := len(entries)
	var candidates []Shrinkable[[]KV[K, V]]
	for k := n / 2; k >= 1; k /= 2 {
		if n-k < minLen {
			continue
		}
		for i := 0; i+k <= n; i += k {
			remaining := make([]Entry[K, V], 0, n-k)
			remaining = append(remaining, entries[:i]...)
			remaining = append(remaining, entries[i+k:]...)
			candidates = append(candidates, Dict(remaining, minLen))
		}
	}
	return stream.FromSlice(candidates)
}

func dictKeyShrinks[K comparable, V any](entries []Entry[K, V], minLen int) stream.Stream[Shrinkable[[]KV[K, V]]] {
	result := stream.Empty[Shrinkable[[]KV[K, V]]]()
	for i := range entries {
		idx := i
		otherKeys := make(map[K]struct{}, len(entries))
		for j, e := range entries {
			if j != idx {
				otherKeys[e.Key.Value] = struct{}{}
			}
		}
		candidates := entries[idx].Key.Shrinks().Filter(func(c Shrinkable[K]) bool {
			_, collides := otherKeys[c.Value]
			return !collides
		})
		mapped := stream.Transform(candidates, func(c Shrinkable[K]) Shrinkable[[]KV[K, V]] {
			replaced := make([]Entry[K, V], len(entries))
			copy(replaced, entries)
			replaced[idx] = Entry[K, V]{Key: c, Val: entries[idx].Val}
			return Dict(replaced, minLen)
		})
		result = result.Concat(mapped)
	}
	return result
}

func dictValueShrinks[K comparable, V any](entries []Entry[K, V], minLen int) stream.Stream[Shrinkable[[]KV[K, V]]] {
	result := stream.Empty[Shrinkable[[]KV[K, V]]]()
	for i := range entries {
		idx := i
		mapped := stream.Transform(entries[idx].Val.Shrinks(), func(c Shrinkable[V]) Shrinkable[[]KV[K, V]] {
			replaced := make([]Entry[K, V], len(entries))
			copy(replaced, entries)
			replaced[idx] = Entry[K, V]{Key: entries[idx].Key, Val: c}
			return Dict(replaced, minLen)
		})
		result = result.Concat(mapped)
	}
	return result
}
