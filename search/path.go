package search

import "cmp"

// ReconstructPath rebuilds the source→target node sequence from a
// predecessor map, walking predecessors back from the target and reversing
// the collected sequence.
//
// Returns (nil, false), an explicit "no path" rather than a partial
// sequence, when the target was not reached: either it has no predecessor
// and is not the source itself, or the chain does not terminate at the
// source.
//
// source == target yields the single-node path ([source], true).
//
// Complexity: O(L) where L = path length.
func ReconstructPath[Node cmp.Ordered](prev map[Node]Node, source, target Node) ([]Node, bool) {
	if source == target {
		return []Node{source}, true
	}

	// Walk backwards, bounding the walk by the map size so a malformed
	// predecessor map with a cycle cannot loop forever.
	path := []Node{target}
	current := target
	for i := 0; i <= len(prev); i++ {
		p, ok := prev[current]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		if p == source {
			reverse(path)

			return path, true
		}
		current = p
	}

	return nil, false
}

// reverse flips a node sequence in place.
func reverse[Node cmp.Ordered](s []Node) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
