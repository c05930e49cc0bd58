package geom

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// Rect is a rectangle with a derived area: plain data, fit for JSON
// round-trips.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// New creates a rectangle of w × h.
func New(w, h float64) Rect {
	return Rect{Width: w, Height: h}
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%g×%g", r.Width, r.Height)
}

// Extent returns the rectangle's dimensions as typesetting device units,
// taking Width and Height to be points.
func (r Rect) Extent() (w, h dimen.DU) {
	w = dimen.DU(r.Width * float64(dimen.PT))
	h = dimen.DU(r.Height * float64(dimen.PT))
	return
}
