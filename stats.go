package bluenoise

import (
	"math"
	"sort"

	"github.com/unixpickle/model3d/model2d"
	"gonum.org/v1/gonum/stat"
)

// Stats holds generic stats about a field
type Stats struct {
	// Points in the field & how many are still active
	Points int
	Active int

	// grid cells & the fraction of them holding a point
	Cells    int
	Coverage float64

	// distance from each point to its nearest neighbour.
	// All zero if there are fewer than two points.
	NearestMin    float64
	NearestMax    float64
	NearestMean   float64
	NearestMedian float64
	NearestStdDev float64
}

// Stats computes stats for the current state of the field.
// This walks the whole grid & builds a k-d tree of every point, so it's not cheap.
func (f *Field) Stats() *Stats {
	s := &Stats{
		Points: f.grid.Count(),
		Active: len(f.active),
		Cells:  f.grid.Size(),
	}
	if s.Cells > 0 {
		s.Coverage = float64(s.Points) / float64(s.Cells)
	}

	dists := NearestDistances(f.SnapshotAll())
	if len(dists) == 0 {
		return s
	}
	sort.Float64s(dists)

	s.NearestMin = dists[0]
	s.NearestMax = dists[len(dists)-1]
	s.NearestMean = stat.Mean(dists, nil)
	s.NearestMedian = stat.Quantile(0.5, stat.Empirical, dists, nil)
	if len(dists) > 1 {
		s.NearestStdDev = stat.StdDev(dists, nil)
	}

	return s
}

// NearestDistances returns, for each point, the distance to the closest other
// point (in the same order as the input). Returns nil for fewer than two points.
func NearestDistances(points []Point) []float64 {
	if len(points) < 2 {
		return nil
	}

	coords := make([]model2d.Coord, len(points))
	for i, p := range points {
		coords[i] = p.coord()
	}
	tree := model2d.NewCoordTree(coords)

	out := make([]float64, len(coords))
	for i, c := range coords {
		out[i] = nearestOther(tree, c)
	}
	return out
}

// nearestOther finds the distance from c to the closest coord in the tree
// that isn't c itself. Duplicates of c count as distance 0.
func nearestOther(tree *model2d.CoordTree, c model2d.Coord) float64 {
	best := math.Inf(1)
	skipped := false
	for _, n := range tree.KNN(3, c) {
		if n == c && !skipped {
			// the first exact match is c itself
			skipped = true
			continue
		}
		if d := n.Dist(c); d < best {
			best = d
		}
	}
	return best
}
