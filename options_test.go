package ggboard

import (
	"testing"

	"github.com/gogpu/ggboard/render"
	"github.com/gogpu/ggboard/shape"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if !o.hasBackground || o.background != DefaultBackground {
		t.Errorf("background = %v (%v), want %v", o.background, o.hasBackground, DefaultBackground)
	}
	if o.antialias {
		t.Error("antialias should default to false")
	}
	if o.lineWidth != render.DefaultLineWidth {
		t.Errorf("lineWidth = %v, want %v", o.lineWidth, render.DefaultLineWidth)
	}
	if o.rasterizer != nil {
		t.Error("rasterizer should default to nil")
	}
}

func TestOptionsApply(t *testing.T) {
	rec := &countingRasterizer{}
	o := defaultOptions()
	for _, opt := range []Option{
		WithoutBackground(),
		WithBackground(shape.RGB(1, 1, 1)),
		WithAntialias(true),
		WithLineWidth(2.5),
		WithRasterizer(rec),
	} {
		opt(&o)
	}
	if !o.hasBackground || o.background != shape.RGB(1, 1, 1) {
		t.Error("WithBackground after WithoutBackground should re-enable the background")
	}
	if !o.antialias || o.lineWidth != 2.5 || o.rasterizer != rec {
		t.Errorf("options = %+v", o)
	}
}
