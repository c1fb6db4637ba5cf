package ui

import (
	"sync"

	"wardforge/internal/shield"
)

// layerHolder receives projections from the session and holds the latest one
// for the draw loop. A buffered notify channel pokes the loop without ever
// blocking the session's goroutine.
type layerHolder struct {
	mu     sync.Mutex
	params shield.LayerParameters
	dirty  chan struct{}
}

func newLayerHolder() *layerHolder {
	h := &layerHolder{dirty: make(chan struct{}, 1)}
	// Seed with the neutral projection so the first frame has something to
	// draw before any choice lands.
	h.params = shield.Project(shield.ChoiceSet{})
	return h
}

// ApplyLayers stores the projection and triggers a redraw.
func (h *layerHolder) ApplyLayers(p shield.LayerParameters) {
	h.mu.Lock()
	h.params = p
	h.mu.Unlock()

	select {
	case h.dirty <- struct{}{}:
	default:
	}
}

// Params returns the most recent projection.
func (h *layerHolder) Params() shield.LayerParameters {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.params
}

// Dirty returns the redraw notification channel.
func (h *layerHolder) Dirty() <-chan struct{} { return h.dirty }
