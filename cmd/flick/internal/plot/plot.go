// Package plot renders a scenario timeline as a PNG chart of offset over time.
package plot

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/flick/pkg/errors"
	"github.com/go-drift/flick/pkg/graphics"
	"github.com/go-drift/flick/pkg/scenario"
)

// Options controls chart rendering.
type Options struct {
	Width  int
	Height int
	Title  string
}

const (
	defaultWidth  = 800
	defaultHeight = 480
	margin        = 48
	strokeWidth   = 1.5
)

var (
	background  = graphics.ColorWhite
	axisColor   = graphics.RGB(0x44, 0x44, 0x44)
	labelColor  = graphics.RGB(0x22, 0x22, 0x22)
	xSeries     = graphics.RGB(0xd3, 0x45, 0x3a)
	ySeries     = graphics.RGB(0x2f, 0x6f, 0xd6)
	motionShade = graphics.RGB(0x2f, 0x6f, 0xd6).WithAlpha8(0x1c)
)

func (o Options) withDefaults() Options {
	if o.Width <= 2*margin {
		o.Width = defaultWidth
	}
	if o.Height <= 2*margin {
		o.Height = defaultHeight
	}
	return o
}

// chart maps timeline coordinates to pixels inside the plot area.
type chart struct {
	area     image.Rectangle
	duration float64
	lo, hi   float64
}

func newChart(tl scenario.Timeline, opts Options) chart {
	b := tl.Bounds()
	lo := math.Min(b.Left, b.Top)
	hi := math.Max(b.Right, b.Bottom)
	if hi-lo < 1 {
		hi = lo + 1
	}
	duration := tl.Duration().Seconds()
	if duration <= 0 {
		duration = 1
	}
	return chart{
		area:     image.Rect(margin, margin/2, opts.Width-margin/2, opts.Height-margin),
		duration: duration,
		lo:       lo,
		hi:       hi,
	}
}

func (c chart) point(elapsed time.Duration, value float64) (float32, float32) {
	x := float64(c.area.Min.X) + elapsed.Seconds()/c.duration*float64(c.area.Dx())
	y := float64(c.area.Max.Y) - (value-c.lo)/(c.hi-c.lo)*float64(c.area.Dy())
	return float32(x), float32(y)
}

// Render draws the timeline. Both offset axes are plotted against elapsed
// time; spans where momentum was active are shaded.
func Render(tl scenario.Timeline, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if len(tl) == 0 {
		drawLabel(img, margin, opts.Height/2, "empty timeline")
		return img
	}

	c := newChart(tl, opts)
	shadeMotion(img, c, tl)
	drawAxes(img, c)
	drawSeries(img, c, tl, func(s scenario.Sample) float64 { return s.Offset.X }, xSeries)
	drawSeries(img, c, tl, func(s scenario.Sample) float64 { return s.Offset.Y }, ySeries)

	drawLabel(img, c.area.Min.X, c.area.Max.Y+16, "0s")
	end := tl.Duration().String()
	drawLabel(img, c.area.Max.X-labelWidth(end), c.area.Max.Y+16, end)
	drawLabel(img, 4, c.area.Max.Y, trimFloat(c.lo))
	drawLabel(img, 4, c.area.Min.Y+10, trimFloat(c.hi))
	drawLabel(img, c.area.Min.X+8, c.area.Max.Y+32, "x")
	drawLine(img, c.area.Min.X+18, c.area.Max.Y+28, c.area.Min.X+38, c.area.Max.Y+28, xSeries)
	drawLabel(img, c.area.Min.X+48, c.area.Max.Y+32, "y")
	drawLine(img, c.area.Min.X+58, c.area.Max.Y+28, c.area.Min.X+78, c.area.Max.Y+28, ySeries)
	if opts.Title != "" {
		drawLabel(img, (opts.Width-labelWidth(opts.Title))/2, 14, opts.Title)
	}
	return img
}

// Encode renders the timeline and writes it to w as PNG.
func Encode(w io.Writer, tl scenario.Timeline, opts Options) error {
	if err := png.Encode(w, Render(tl, opts)); err != nil {
		return &errors.DriftError{Op: "plot.Encode", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// WriteFile renders the timeline to a PNG file at path.
func WriteFile(path string, tl scenario.Timeline, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap("plot.WriteFile", errors.KindRender, path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap("plot.WriteFile", errors.KindRender, path, cerr)
		}
	}()
	if err := Encode(f, tl, opts); err != nil {
		return errors.Wrap("plot.WriteFile", errors.KindRender, path, err)
	}
	return nil
}

func shadeMotion(img *image.RGBA, c chart, tl scenario.Timeline) {
	src := image.NewUniform(motionShade)
	for i := 1; i < len(tl); i++ {
		if !tl[i].Animating && !tl[i-1].Animating {
			continue
		}
		x0, _ := c.point(tl[i-1].Elapsed, c.lo)
		x1, _ := c.point(tl[i].Elapsed, c.lo)
		r := image.Rect(int(x0), c.area.Min.Y, int(math.Ceil(float64(x1))), c.area.Max.Y)
		draw.Draw(img, r, src, image.Point{}, draw.Over)
	}
}

func drawAxes(img *image.RGBA, c chart) {
	drawLine(img, c.area.Min.X, c.area.Min.Y, c.area.Min.X, c.area.Max.Y, axisColor)
	drawLine(img, c.area.Min.X, c.area.Max.Y, c.area.Max.X, c.area.Max.Y, axisColor)
}

func drawSeries(img *image.RGBA, c chart, tl scenario.Timeline, value func(scenario.Sample) float64, col graphics.Color) {
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	for i := 1; i < len(tl); i++ {
		ax, ay := c.point(tl[i-1].Elapsed, value(tl[i-1]))
		bx, by := c.point(tl[i].Elapsed, value(tl[i]))
		segment(z, ax, ay, bx, by)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col graphics.Color) {
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	segment(z, float32(x0), float32(y0), float32(x1), float32(y1))
	z.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// segment adds a stroked line from a to b as a closed quad.
func segment(z *vector.Rasterizer, ax, ay, bx, by float32) {
	dx, dy := float64(bx-ax), float64(by-ay)
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, length = 1, 1
	}
	nx := float32(-dy / length * strokeWidth / 2)
	ny := float32(dx / length * strokeWidth / 2)
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

func drawLabel(img *image.RGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func labelWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
