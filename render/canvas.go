package render

import (
	"image"
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/voidshard/bluenoise"
)

// ColourScheme defines how the various parts of a field are drawn.
type ColourScheme struct {
	Background color.Color
	Samples    color.Color
	Recent     color.Color
	Active     color.Color
	Grid       color.Color

	// radius of a drawn point & width of grid lines, in pixels
	PointRadius   float64
	GridLineWidth float64
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background:    colornames.Black,
		Samples:       colornames.White,
		Recent:        colornames.Gold,
		Active:        color.NRGBA{R: 0xff, A: 0x40},
		Grid:          color.NRGBA{R: 100, G: 100, B: 100, A: 100},
		PointRadius:   1,
		GridLineWidth: 0.8,
	}
}

// Canvas draws a field onto an image. Domain units are multiplied by Scale
// to get pixels.
type Canvas struct {
	field  *bluenoise.Field
	scheme *ColourScheme
	scale  float64
	ctx    *gg.Context
}

// New returns a cleared canvas sized to fit the field's domain.
// A nil scheme uses DefaultScheme, a scale <= 0 is taken as 1.
func New(f *bluenoise.Field, scale float64, scheme *ColourScheme) *Canvas {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	if scale <= 0 {
		scale = 1
	}

	w := int(math.Ceil(f.Width() * scale))
	h := int(math.Ceil(f.Height() * scale))

	c := &Canvas{
		field:  f,
		scheme: scheme,
		scale:  scale,
		ctx:    gg.NewContext(w, h),
	}
	c.Clear()
	return c
}

// Clear paints the whole canvas with the background colour
func (c *Canvas) Clear() {
	c.ctx.SetColor(c.scheme.Background)
	c.ctx.Clear()
}

// DrawGrid draws the bucket grid lines
func (c *Canvas) DrawGrid() {
	sz := c.field.CellSize() * c.scale
	cols := c.field.Cols()
	rows := c.field.Rows()

	c.ctx.SetColor(c.scheme.Grid)
	c.ctx.SetLineWidth(c.scheme.GridLineWidth)

	for x := 0; x <= cols; x++ {
		c.ctx.DrawLine(float64(x)*sz, 0, float64(x)*sz, float64(rows)*sz)
	}
	for y := 0; y <= rows; y++ {
		c.ctx.DrawLine(0, float64(y)*sz, float64(cols)*sz, float64(y)*sz)
	}
	c.ctx.Stroke()
}

// DrawAll draws every point in the field. Slow for big fields, see DrawRecent.
func (c *Canvas) DrawAll() {
	c.DrawPoints(c.field.SnapshotAll(), c.scheme.Samples)
}

// DrawActive draws the field's active points
func (c *Canvas) DrawActive() {
	c.DrawPoints(c.field.SnapshotActive(), c.scheme.Active)
}

// DrawRecent drains the field's new points & draws them, returning how many
// were drawn.
func (c *Canvas) DrawRecent() int {
	pts := c.field.DrainDirty()
	c.DrawPoints(pts, c.scheme.Recent)
	return len(pts)
}

// DrawPoints draws the given points in a single colour
func (c *Canvas) DrawPoints(pts []bluenoise.Point, col color.Color) {
	if len(pts) == 0 {
		return
	}
	c.ctx.SetColor(col)
	for _, p := range pts {
		c.ctx.DrawPoint(p.X*c.scale, p.Y*c.scale, c.scheme.PointRadius)
	}
	c.ctx.Fill()
}

// DrawGradient draws points with a hue running from red through to violet in
// the order given, handy for seeing how the field grew out from its seeds.
func (c *Canvas) DrawGradient(pts []bluenoise.Point) error {
	for i, p := range pts {
		hue := 0.0
		if len(pts) > 1 {
			hue = 300 * float64(i) / float64(len(pts)-1)
		}
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			return errors.Wrapf(err, "colour for point %d", i)
		}
		c.ctx.SetColor(color.RGBA{R: r, G: g, B: b, A: 0xff})
		c.ctx.DrawPoint(p.X*c.scale, p.Y*c.scale, c.scheme.PointRadius)
		c.ctx.Fill()
	}
	return nil
}

// Image returns the canvas image
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas to disk
func (c *Canvas) SavePNG(fpath string) error {
	return errors.Wrapf(c.ctx.SavePNG(fpath), "saving %s", fpath)
}
