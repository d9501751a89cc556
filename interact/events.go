package interact

import (
	"time"

	"github.com/LockDragonBorn/parcoords/geom"
)

// PointerMove recomputes the hovered record for a pointer at (x, y),
// hit-testing only the currently visible polylines. The hover clears when
// nothing comes within the hover threshold.
func (c *Controller) PointerMove(x, y float64) {
	if c.model == nil {
		return
	}
	hit := geom.Closest(c.visible, geom.Point{X: x, Y: y}, c.cfg.HoverThreshold)
	if hit == nil {
		c.sel.Hovered = nil
	} else {
		c.sel.Hovered = hit.Record
	}
}

// PointerLeave clears the hover.
func (c *Controller) PointerLeave() {
	c.sel.Hovered = nil
}

// Click updates the selection from the current hover: a hovered record
// different from the selection becomes the selection; clicking the
// selected record again, or empty background, clears it.
func (c *Controller) Click() {
	if c.sel.Hovered != nil && c.sel.Hovered != c.sel.Selected {
		c.sel.Selected = c.sel.Hovered
	} else {
		c.sel.Selected = nil
	}
}

// DragStart begins dragging the axis for the given column. It is ignored
// unless the controller is idle.
func (c *Controller) DragStart(col int) {
	if c.mode != Idle || c.model == nil {
		return
	}
	a := c.model.Axis(col)
	if a == nil {
		return
	}
	c.cancelSettle()
	c.mode = Dragging
	c.dragAxis = a
	c.model.StartDrag(a)
}

// DragMove follows the pointer with the dragged axis, reordering axes as
// it passes its neighbors. Geometry follows the live position immediately.
func (c *Controller) DragMove(x float64) {
	if c.mode != Dragging {
		return
	}
	c.model.MoveDrag(c.dragAxis, x)
	c.refresh()
}

// DragEnd releases the dragged axis. Axes animate to their new settled
// positions over SettleDelay; the polyline geometry snaps to the settled
// order only after the animation completes, so lines never jump ahead of
// the axes.
func (c *Controller) DragEnd() {
	if c.mode != Dragging {
		return
	}
	c.model.EndDrag(c.dragAxis)
	c.dragAxis = nil
	c.mode = Idle
	c.settleTimer = time.AfterFunc(c.cfg.SettleDelay, func() {
		c.refresh()
	})
}

func (c *Controller) cancelSettle() {
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
		c.refresh()
	}
}

// BrushStart begins a brush gesture on the axis for the given column. It
// is ignored unless the controller is idle.
func (c *Controller) BrushStart(col int) {
	if c.mode != Idle || c.model == nil {
		return
	}
	a := c.model.Axis(col)
	if a == nil {
		return
	}
	c.mode = Brushing
	c.brushAxis = a
}

// BrushMove updates the brush selection to the pixel range [lo, hi] and
// re-filters on every tick.
func (c *Controller) BrushMove(lo, hi float64) {
	if c.mode != Brushing {
		return
	}
	c.model.SetBrush(c.brushAxis, lo, hi)
	c.refresh()
}

// BrushEnd finishes the gesture. An empty final range (lo == hi) clears
// the axis's brush, matching the convention of dismissing a brush by
// clicking its axis.
func (c *Controller) BrushEnd(lo, hi float64) {
	if c.mode != Brushing {
		return
	}
	if lo == hi {
		c.model.ClearBrush(c.brushAxis)
	} else {
		c.model.SetBrush(c.brushAxis, lo, hi)
	}
	c.brushAxis = nil
	c.mode = Idle
	c.refresh()
}

// ClearBrush removes any brush on the given column outside a gesture.
func (c *Controller) ClearBrush(col int) {
	if c.model == nil {
		return
	}
	if a := c.model.Axis(col); a != nil {
		c.model.ClearBrush(a)
		c.refresh()
	}
}
