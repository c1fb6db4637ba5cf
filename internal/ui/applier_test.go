package ui

import (
	"testing"

	"wardforge/internal/shield"
)

// TestLayerHolderStartsNeutral verifies the first frame has a projection to
// draw before any choice lands.
func TestLayerHolderStartsNeutral(t *testing.T) {
	h := newLayerHolder()
	p := h.Params()
	if p.Base.Tint != shield.NeutralTint {
		t.Errorf("initial tint = %v; want neutral", p.Base.Tint)
	}
	if p.Markers.Orbit != shield.MarkerOrbit {
		t.Errorf("initial orbit = %v; want %v", p.Markers.Orbit, shield.MarkerOrbit)
	}
}

// TestLayerHolderKeepsLatest verifies repeated applications never block and
// Params returns the last one.
func TestLayerHolderKeepsLatest(t *testing.T) {
	h := newLayerHolder()

	for i := 0; i < 10; i++ {
		cs := shield.ChoiceSet{Color: shield.RGB{R: uint8(i)}, HasColor: true}
		h.ApplyLayers(shield.Project(cs))
	}

	if got := h.Params().Base.Tint; got != (shield.RGB{R: 9}) {
		t.Errorf("latest tint = %v; want R:9", got)
	}

	// The dirty channel coalesces to at most one pending signal.
	select {
	case <-h.Dirty():
	default:
		t.Fatal("no redraw signal pending after applications")
	}
	select {
	case <-h.Dirty():
		t.Fatal("more than one redraw signal pending")
	default:
	}
}
