package shrink

// RuneTowards builds a complete binary-search shrink tree of runes between
// target and r (reusing the integer shrinker over the signed distance),
// shrinking r toward target. Callers pass 'a' for ASCII alphabets and 0 for
// unicode, per the string shrinker's per-character policy.
func RuneTowards(r, target rune) Shrinkable[rune] {
	delta := Int(int64(r) - int64(target))
	return Map(delta, func(d int64) rune { return target + rune(d) })
}

// String treats s as an array of characters and delegates to the array
// shrinker; each character additionally shrinks toward target. minLen is
// the minimum length the source generator declared.
func String(s string, target rune, minLen int) Shrinkable[string] {
	runes := []rune(s)
	elems := make([]Shrinkable[rune], len(runes))
	for i, r := range runes {
		elems[i] = RuneTowards(r, target)
	}
	arr := Array(elems, minLen)
	return Map(arr, func(rs []rune) string { return string(rs) })
}
