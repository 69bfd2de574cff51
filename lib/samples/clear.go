package samples

import (
	"github.com/fosdem/dashgl/lib/utils"
)

// Fill is a solid rectangle inset from every window edge by Inset pixels.
type Fill struct {
	Inset  int
	Colour utils.Colour
}

// Rect places the fill in a width x height framebuffer. ok is false once the
// window is too small for the inset to leave anything.
func (f Fill) Rect(width, height int) (x, y, w, h int, ok bool) {
	w = width - 2*f.Inset
	h = height - 2*f.Inset
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	return f.Inset, f.Inset, w, h, true
}

// Clear draws no geometry at all: a dark blue window with a teal panel 64
// pixels in from the edges.
func Clear() *Sample {
	return &Sample{
		Name:  "clear",
		Title: "My First Window",
		Fills: []Fill{
			{Inset: 0, Colour: utils.Colour{R: 0x00 / 255.0, G: 0x00 / 255.0, B: 0x44 / 255.0, A: 1}},
			{Inset: 64, Colour: utils.Colour{R: 0x00 / 255.0, G: 0x77 / 255.0, B: 0x77 / 255.0, A: 1}},
		},
	}
}
