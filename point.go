package bluenoise

import (
	"github.com/unixpickle/model3d/model2d"
)

// Point is a location in domain space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return p.coord().Dist(q.coord())
}

func (p Point) coord() model2d.Coord {
	return model2d.Coord{X: p.X, Y: p.Y}
}

func fromCoord(c model2d.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

// fromCoords converts a slice of coords to points
func fromCoords(in []model2d.Coord) []Point {
	out := make([]Point, len(in))
	for i, c := range in {
		out[i] = fromCoord(c)
	}
	return out
}
