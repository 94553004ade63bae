// Package chart renders small decorative charts for the landing page.
//
// Views never draw charts themselves: they hand an ordered series to a
// Renderer and embed whatever it writes. Swapping the Renderer (or passing
// none) changes the chart without touching the page layout.
package chart

import (
	"context"
	"errors"
	"io"
)

// ErrNoData is returned when a renderer is asked to draw an empty series.
var ErrNoData = errors.New("chart: empty series")

// Point is one labelled sample of a series.
type Point struct {
	Label string
	Value float64
}

// Options tunes the rendered area chart. Zero values fall back to defaults.
type Options struct {
	Width       float64 // viewBox width
	Height      float64 // viewBox height
	Stroke      string  // line colour
	StrokeWidth float64
	GradientID  string // id of the fill gradient, must be unique per document
	Title       string // accessible name of the chart
	Unit        string // appended to tooltip values, e.g. "visitas"
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.Height <= 0 {
		o.Height = 192
	}
	if o.Stroke == "" {
		o.Stroke = "#111827"
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 2
	}
	if o.GradientID == "" {
		o.GradientID = "grad"
	}
}

// Renderer draws a single filled area series to w.
type Renderer interface {
	RenderArea(ctx context.Context, w io.Writer, points []Point, opts Options) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(ctx context.Context, w io.Writer, points []Point, opts Options) error

// RenderArea calls f.
func (f RendererFunc) RenderArea(ctx context.Context, w io.Writer, points []Point, opts Options) error {
	return f(ctx, w, points, opts)
}

// Noop is a Renderer that accepts any series and writes nothing.
type Noop struct{}

// RenderArea implements Renderer.
func (Noop) RenderArea(context.Context, io.Writer, []Point, Options) error {
	return nil
}
