package geom_test

import (
	"testing"

	"github.com/npillmayer/cssel/geom"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestRectArea(t *testing.T) {
	r := geom.New(4, 5)
	if r.Area() != 20 {
		t.Errorf("expected area of %s to be 20, is %g", r, r.Area())
	}
}

func TestRectZero(t *testing.T) {
	var r geom.Rect
	if r.Area() != 0 {
		t.Errorf("expected zero rect to have area 0, is %g", r.Area())
	}
}

func TestRectExtent(t *testing.T) {
	r := geom.New(10, 2)
	w, h := r.Extent()
	if w != 10*dimen.PT || h != 2*dimen.PT {
		t.Errorf("expected extent to be 10pt × 2pt, is %s × %s", w, h)
	}
}
