// Package search_test: path reconstruction unit tests.
package search_test

import (
	"testing"

	"github.com/katalvlaran/roadsearch/search"
)

func TestReconstructPath_WalksBackAndReverses(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B", "D": "C"}

	path, ok := search.ReconstructPath(prev, "A", "D")
	if !ok {
		t.Fatal("expected a path")
	}
	if want := []string{"A", "B", "C", "D"}; !equalPath(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestReconstructPath_SourceEqualsTarget(t *testing.T) {
	path, ok := search.ReconstructPath(map[string]string{}, "A", "A")
	if !ok || !equalPath(path, []string{"A"}) {
		t.Errorf("path = %v, ok = %v; want [A], true", path, ok)
	}
}

func TestReconstructPath_TargetNeverReached(t *testing.T) {
	// D has no predecessor and is not the source: explicit no-path result.
	prev := map[string]string{"B": "A"}

	path, ok := search.ReconstructPath(prev, "A", "D")
	if ok || path != nil {
		t.Errorf("path = %v, ok = %v; want nil, false", path, ok)
	}
}

func TestReconstructPath_ChainNotTerminatingAtSource(t *testing.T) {
	// The chain from D ends at X, which is not the source A.
	prev := map[string]string{"D": "C", "C": "X"}

	path, ok := search.ReconstructPath(prev, "A", "D")
	if ok || path != nil {
		t.Errorf("path = %v, ok = %v; want nil, false (no partial sequence)", path, ok)
	}
}

func TestReconstructPath_CyclicMapTerminates(t *testing.T) {
	// A malformed predecessor map with a cycle must not loop forever.
	prev := map[string]string{"D": "C", "C": "D"}

	path, ok := search.ReconstructPath(prev, "A", "D")
	if ok || path != nil {
		t.Errorf("path = %v, ok = %v; want nil, false", path, ok)
	}
}
