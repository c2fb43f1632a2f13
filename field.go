package bluenoise

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/voidshard/bluenoise/internal/grid"
)

// Field incrementally fills a rectangular domain with points no closer than
// MinRadius to each other (fast approximate Poisson-disk sampling).
//
// The caller plants one or more seeds with AddSeed then calls Advance until
// Done. Points are never removed once accepted.
//
// A Field is not safe for concurrent use.
type Field struct {
	width       float64
	height      float64
	minRadius   float64
	maxAttempts int

	rng  RandomSource
	grid *grid.Grid

	// points still able to spawn neighbours
	active []Point

	// points accepted since the last DrainDirty
	dirty []Point

	started   bool
	signalled bool
	onDone    func()
}

// New creates an empty Field covering [0,width) x [0,height).
// If rng is nil a time seeded source is used.
// Besides non-positive settings, a domain narrower or shorter than one grid
// cell (minRadius / sqrt(2)) is rejected with ErrInvalidConfig.
func New(width, height, minRadius float64, maxAttempts int, rng RandomSource) (*Field, error) {
	cfg := &Config{Width: width, Height: height, MinRadius: minRadius, MaxAttempts: maxAttempts}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := grid.New(width, height, minRadius/math.Sqrt2)
	if g.Cols() == 0 || g.Rows() == 0 {
		return nil, errors.Wrapf(
			ErrInvalidConfig,
			"domain %vx%v is smaller than one grid cell (%v)", width, height, g.CellSize(),
		)
	}

	if rng == nil {
		rng = NewRandomSource(0)
	}

	return &Field{
		width:       width,
		height:      height,
		minRadius:   minRadius,
		maxAttempts: maxAttempts,
		rng:         rng,
		grid:        g,
		active:      []Point{},
		dirty:       []Point{},
	}, nil
}

// NewFromConfig creates a Field from cfg & plants the configured seeds.
// If cfg has no seeds the centre of the domain is used.
// If rng is nil a source seeded with cfg.Seed is used.
func NewFromConfig(cfg *Config, rng RandomSource) (*Field, error) {
	if rng == nil {
		rng = NewRandomSource(cfg.Seed)
	}

	f, err := New(cfg.Width, cfg.Height, cfg.MinRadius, cfg.MaxAttempts, rng)
	if err != nil {
		return nil, err
	}

	seeds := cfg.Seeds
	if len(seeds) == 0 {
		seeds = []Point{Pt(cfg.Width/2, cfg.Height/2)}
	}
	for _, s := range seeds {
		_, err = f.AddSeed(s.X, s.Y)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// OnDone sets a function to call once no active points remain. It's called
// at most once each time the active set runs dry, from within Advance.
func (f *Field) OnDone(fn func()) {
	f.onDone = fn
}

// AddSeed plants a point at (x, y) & marks it active.
//
// Seeds are not checked against existing points: if the seed's cell is
// already taken the seed replaces the point stored there. The replaced point
// stays in the active set (so may still spawn neighbours) but is no longer in
// the grid, nor returned by SnapshotAll.
//
// Seeds in the thin strip past the last full column / row are stored in the
// nearest cell.
func (f *Field) AddSeed(x, y float64) (Point, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height || math.IsNaN(x) || math.IsNaN(y) {
		return Point{}, errors.Wrapf(ErrOutOfBounds, "seed (%v,%v) outside %vx%v", x, y, f.width, f.height)
	}

	p := Pt(x, y)
	col, row := f.grid.Clamp(f.grid.Cell(p.coord()))
	f.grid.Set(col, row, p.coord())

	f.active = append(f.active, p)
	f.started = true
	f.signalled = false

	return p, nil
}

// Advance runs up to `iterations` rounds of generation & returns the points
// accepted during this call.
//
// Each round picks a random active point and tries MaxAttempts candidates in
// the annulus [r, 2r) around it. Every candidate that fits is accepted. If
// none fit the active point is retired for good.
func (f *Field) Advance(iterations int) []Point {
	accepted := []Point{}

	if len(f.active) == 0 {
		f.signalDone()
		return accepted
	}

	for it := 0; it < iterations && len(f.active) > 0; it++ {
		i := f.rng.UniformIndex(len(f.active))
		base := f.active[i]

		found := false
		for n := 0; n < f.maxAttempts; n++ {
			candidate := f.candidate(base)
			if !f.grid.Fits(candidate.coord(), f.minRadius) {
				continue
			}

			col, row := f.grid.Cell(candidate.coord())
			f.grid.Set(col, row, candidate.coord())
			f.active = append(f.active, candidate)
			f.dirty = append(f.dirty, candidate)
			accepted = append(accepted, candidate)
			found = true
		}

		if !found {
			essentials.UnorderedDelete(&f.active, i)
		}
	}

	return accepted
}

// Run calls Advance in batches of `batch` rounds until no active points
// remain, returning everything accepted along the way.
// Nb. this does not fire OnDone, the next Advance call does.
func (f *Field) Run(batch int) []Point {
	if batch <= 0 {
		batch = 1
	}
	all := []Point{}
	for len(f.active) > 0 {
		all = append(all, f.Advance(batch)...)
	}
	return all
}

// candidate returns a point at a random angle, between r & 2r from base.
// The distance (not the area) is uniform, so candidates bunch towards the
// inner edge of the annulus.
func (f *Field) candidate(base Point) Point {
	dir := f.rng.UnitVector().coord()
	mag := f.rng.UniformFloat(f.minRadius, f.minRadius*2)
	return fromCoord(base.coord().Add(dir.Scale(mag)))
}

// signalDone fires onDone once per exhaustion of the active set
func (f *Field) signalDone() {
	if !f.started || f.signalled {
		return
	}
	f.signalled = true
	if f.onDone != nil {
		f.onDone()
	}
}

// DrainDirty returns the points accepted since the last call, and forgets them.
func (f *Field) DrainDirty() []Point {
	out := f.dirty
	f.dirty = []Point{}
	return out
}

// SnapshotAll returns every point in the field, in no particular order.
// This walks the whole grid; prefer Advance's return or DrainDirty if you
// only need new points.
func (f *Field) SnapshotAll() []Point {
	return fromCoords(f.grid.Points())
}

// SnapshotActive returns the points that can still spawn neighbours
func (f *Field) SnapshotActive() []Point {
	out := make([]Point, len(f.active))
	copy(out, f.active)
	return out
}

// Started returns if any seed has been placed
func (f *Field) Started() bool {
	return f.started
}

// Done returns if the field has been seeded & has no active points left.
func (f *Field) Done() bool {
	return f.started && len(f.active) == 0
}

// Count returns the number of points in the field
func (f *Field) Count() int {
	return f.grid.Count()
}

// ActiveCount returns the number of active points
func (f *Field) ActiveCount() int {
	return len(f.active)
}

// Width of the domain
func (f *Field) Width() float64 {
	return f.width
}

// Height of the domain
func (f *Field) Height() float64 {
	return f.height
}

// MinRadius returns the minimum distance between points
func (f *Field) MinRadius() float64 {
	return f.minRadius
}

// MaxAttempts returns the candidate budget per round
func (f *Field) MaxAttempts() int {
	return f.maxAttempts
}

// CellSize returns the side of a grid cell (MinRadius / sqrt(2))
func (f *Field) CellSize() float64 {
	return f.grid.CellSize()
}

// Cols returns the number of grid columns
func (f *Field) Cols() int {
	return f.grid.Cols()
}

// Rows returns the number of grid rows
func (f *Field) Rows() int {
	return f.grid.Rows()
}
