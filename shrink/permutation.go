package shrink

import (
	"fmt"
	"strings"

	"github.com/kestrel-labs/qcheck/stream"
)

// Permutation shrinks a permutation (as a slice where p[i] is the element
// at position i) toward the identity permutation 0,1,2,.... A child is
// produced for each out-of-place index i (p[i] != i) by swapping p[i] with
// whatever currently sits at index p[i] — placing that value into its
// correct slot and reducing the number of out-of-place elements by at
// least one, which is what guarantees termination.
func Permutation(p []int) Shrinkable[[]int] {
	cur := append([]int{}, p...)
	return New(cur, func() stream.Stream[Shrinkable[[]int]] {
		var candidates []Shrinkable[[]int]
		seen := map[string]struct{}{sig(cur): {}}
		for i, v := range cur {
			if v == i {
				continue
			}
			next := append([]int{}, cur...)
			next[i], next[v] = next[v], next[i]
			key := sig(next)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, Permutation(next))
		}
		return stream.FromSlice(candidates)
	})
}

func sig(p []int) string {
	var b strings.Builder
	for _, v := range p {
		fmt.Fprintf(&b, "%d,", v)
	}
	return b.String()
}
