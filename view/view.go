package view

import (
	"errors"
	"sync"
)

// View identifies a top-level dashboard view.
type View int

const (
	ViewCollection View = iota
	ViewCreate
	ViewAnalytics
)

func (v View) String() string {
	switch v {
	case ViewCreate:
		return "create"
	case ViewAnalytics:
		return "analytics"
	default:
		return "links"
	}
}

// ErrAnalyticsUnavailable is returned when switching to the analytics view
// before any snapshot has been loaded.
var ErrAnalyticsUnavailable = errors.New("no analytics loaded yet")

// Controller routes between top-level views. It performs no network calls and
// holds no resource state of its own; the analytics gate is answered by the
// injected probe (the resource store).
type Controller struct {
	mu          sync.Mutex
	active      View
	hasSnapshot func() bool
}

// NewController creates a controller showing the collection view.
// hasSnapshot reports whether an analytics snapshot is available to display.
func NewController(hasSnapshot func() bool) *Controller {
	return &Controller{active: ViewCollection, hasSnapshot: hasSnapshot}
}

// Active returns the active view.
func (c *Controller) Active() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// SwitchTo activates a view. The analytics view is only enterable once a
// snapshot exists; a rejected switch leaves the active view unchanged.
func (c *Controller) SwitchTo(v View) error {
	if v == ViewAnalytics && (c.hasSnapshot == nil || !c.hasSnapshot()) {
		return ErrAnalyticsUnavailable
	}
	c.mu.Lock()
	c.active = v
	c.mu.Unlock()
	return nil
}
