package grid

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/model3d/model2d"
)

// Grid is a fixed size bucket grid laid over a rectangular domain starting at
// (0,0). Each cell holds at most one point, indexed by row*cols + col.
//
// Cells are write-once from the point of view of the sampler, but Set itself
// happily overwrites; it's up to the caller to check Occupied first.
type Grid struct {
	cellSize float64
	cols     int
	rows     int

	// occupied has one bit per cell, points holds the point for set bits
	occupied bitmap.Bitmap
	points   []model2d.Coord

	count int
}

// New returns an empty grid covering width x height with square cells of
// side cellSize. The number of cols / rows is floored, so a thin strip at the
// right / bottom edge of the domain may not be covered by any cell.
func New(width, height, cellSize float64) *Grid {
	cols := int(math.Floor(width / cellSize))
	rows := int(math.Floor(height / cellSize))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		occupied: bitmap.New(cols * rows),
		points:   make([]model2d.Coord, cols*rows),
	}
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// CellSize returns the side length of a cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return g.cols * g.rows
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	return g.count
}

// Cell returns the (col, row) containing p. The result may be out of bounds,
// including negative.
func (g *Grid) Cell(p model2d.Coord) (int, int) {
	return int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))
}

// InBounds returns if (col, row) is a cell of the grid
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

// Clamp pulls (col, row) into the grid.
// Nb. meaningless for a grid with no cells.
func (g *Grid) Clamp(col, row int) (int, int) {
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// Occupied returns if a point is stored at (col, row). Cells outside the grid
// are never occupied.
func (g *Grid) Occupied(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.occupied.Get(row*g.cols + col)
}

// At returns the point stored at (col, row), if any.
func (g *Grid) At(col, row int) (model2d.Coord, bool) {
	if !g.Occupied(col, row) {
		return model2d.Coord{}, false
	}
	return g.points[row*g.cols+col], true
}

// Set stores p at (col, row), replacing whatever was there.
// Returns false if (col, row) is outside the grid.
func (g *Grid) Set(col, row int, p model2d.Coord) bool {
	if !g.InBounds(col, row) {
		return false
	}
	i := row*g.cols + col
	if !g.occupied.Get(i) {
		g.count++
	}
	g.occupied.Set(i, true)
	g.points[i] = p
	return true
}

// Fits returns if p could be stored without breaking the minimum distance:
// its cell must exist and be empty, and every point in the surrounding 5x5
// cells must be at least minDist away.
//
// Cells are minDist/sqrt(2) wide, so points two cells apart along a row or
// column can still be closer than minDist; a 3x3 scan isn't enough.
func (g *Grid) Fits(p model2d.Coord, minDist float64) bool {
	col, row := g.Cell(p)
	if !g.InBounds(col, row) || g.Occupied(col, row) {
		return false
	}

	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			neighbour, ok := g.At(col+dc, row+dr)
			if !ok {
				continue
			}
			if neighbour.Dist(p) < minDist {
				return false
			}
		}
	}

	return true
}

// Points returns every stored point in row major order.
// This walks every cell.
func (g *Grid) Points() []model2d.Coord {
	out := make([]model2d.Coord, 0, g.count)
	for i := 0; i < g.cols*g.rows; i++ {
		if g.occupied.Get(i) {
			out = append(out, g.points[i])
		}
	}
	return out
}
