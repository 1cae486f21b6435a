package osmload

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"

	"github.com/katalvlaran/roadsearch/roadnet"
)

// nodePoint adapts one graph node to the quadtree's orb.Pointer contract.
// orb points are (lon, lat) ordered.
type nodePoint struct {
	id int64
	pt orb.Point
}

func (n nodePoint) Point() orb.Point { return n.pt }

// Snapper maps raw WGS-84 coordinates onto the nearest graph node.
// Construct once per graph and query freely; lookups are read-only and safe
// for concurrent use.
type Snapper struct {
	tree *quadtree.Quadtree
}

// NewSnapper indexes every node of g into a point quadtree.
// Returns ErrEmptyGraph when g has no nodes.
func NewSnapper(g *roadnet.Graph) (*Snapper, error) {
	ids := g.Nodes()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	bound := orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}
	tree := quadtree.New(bound)
	for _, id := range ids {
		lat, lon, ok := g.Coordinates(id)
		if !ok {
			continue
		}
		if err := tree.Add(nodePoint{id: id, pt: orb.Point{lon, lat}}); err != nil {
			return nil, fmt.Errorf("osmload: index node %d: %w", id, err)
		}
	}

	return &Snapper{tree: tree}, nil
}

// Nearest returns the graph node closest to (lat, lon).
func (s *Snapper) Nearest(lat, lon float64) (int64, error) {
	found := s.tree.Find(orb.Point{lon, lat})
	np, ok := found.(nodePoint)
	if !ok {
		return 0, fmt.Errorf("osmload: no node near (%.6f, %.6f)", lat, lon)
	}

	return np.id, nil
}
