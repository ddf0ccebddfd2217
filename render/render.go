// Package render draws a judged stick set to a PNG for debugging.
//
// The picture is fitted to the canvas with the y axis pointing up: the
// found loop is filled, every stick is stroked on top of it and every
// crossing gets a dot.
package render

import (
	"errors"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/katalvlaran/stickloop/geom"
	"github.com/katalvlaran/stickloop/judge"
)

// ErrEmptyScene indicates a scene without sticks.
var ErrEmptyScene = errors.New("render: nothing to draw")

// Colors used by Draw.
var (
	Background = color.NRGBA{A: 255}
	LoopFill   = color.NRGBA{G: 128, A: 255}
	StickColor = color.NRGBA{G: 255, B: 255, A: 255}
	CrossColor = color.NRGBA{R: 255, A: 255}
)

// Options sizes the canvas.
type Options struct {
	Width, Height int
	Padding       float64
	LineWidth     float64
}

// DefaultOptions returns an 800x800 canvas with 40px padding.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Padding: 40, LineWidth: 2}
}

// Scene is what gets drawn.
type Scene struct {
	Sticks    []geom.Stick
	Crossings []geom.Point
	Loop      []geom.Point
}

// SceneOf collects the sticks, crossings and loop of a run.
func SceneOf(sticks []geom.Stick, res *judge.Result) Scene {
	s := Scene{Sticks: sticks}
	if res == nil {
		return s
	}
	for _, c := range res.Crossings {
		s.Crossings = append(s.Crossings, c.Point)
	}
	s.Loop = res.Cycle

	return s
}

// Draw renders s onto a new context.
func Draw(s Scene, o Options) (*gg.Context, error) {
	if len(s.Sticks) == 0 {
		return nil, ErrEmptyScene
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, st := range s.Sticks {
		for _, p := range [...]geom.Point{st.A, st.B} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	w, h := float64(o.Width), float64(o.Height)
	scale := math.Min((w-2*o.Padding)/math.Max(maxX-minX, 1e-9), (h-2*o.Padding)/math.Max(maxY-minY, 1e-9))
	if math.IsInf(scale, 0) || scale <= 0 {
		scale = 1
	}

	c := gg.NewContext(o.Width, o.Height)
	c.SetColor(Background)
	c.DrawRectangle(0, 0, w, h)
	c.Fill()

	// Flip the context so the origin is at the bottom left, then center.
	c.Translate(0, h)
	c.Scale(1, -1)
	c.Translate(w/2, h/2)
	c.Scale(scale, scale)
	c.Translate(-(minX+maxX)/2, -(minY+maxY)/2)

	if len(s.Loop) >= 3 {
		c.MoveTo(s.Loop[0].X, s.Loop[0].Y)
		for _, p := range s.Loop[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetColor(LoopFill)
		c.Fill()
	}

	c.SetLineWidth(o.LineWidth)
	c.SetColor(StickColor)
	for _, st := range s.Sticks {
		c.DrawLine(st.A.X, st.A.Y, st.B.X, st.B.Y)
		c.Stroke()
	}

	c.SetColor(CrossColor)
	r := 2 * o.LineWidth / scale
	for _, p := range s.Crossings {
		c.DrawCircle(p.X, p.Y, r)
		c.Fill()
	}

	return c, nil
}

// WritePNG draws s and encodes it to w.
func WritePNG(w io.Writer, s Scene, o Options) error {
	c, err := Draw(s, o)
	if err != nil {
		return err
	}

	return c.EncodePNG(w)
}

// SavePNG draws s into the file at path.
func SavePNG(path string, s Scene, o Options) error {
	c, err := Draw(s, o)
	if err != nil {
		return err
	}

	return c.SavePNG(path)
}

// Preview shows the PNG at path inline on terminals that speak the iTerm2
// image protocol.
func Preview(path string, w *os.File) {
	imgcat.CatFile(path, w)
}
