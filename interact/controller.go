// Package interact owns the transient interactive state of a
// parallel-coordinates plot: the drag, brush, hover and selection state,
// and the debounced recompute cycle that keeps derived geometry and
// visibility consistent with the axis model after every mutation.
//
// The engine is single-goroutine by contract: every event handler and the
// recompute pipeline run synchronously on the host's event loop. The only
// asynchronous pieces are the debounce and drag-settle timers, whose
// callbacks a host can take over with Flush.
package interact

import (
	"time"

	"github.com/LockDragonBorn/parcoords"
	"github.com/LockDragonBorn/parcoords/axis"
	"github.com/LockDragonBorn/parcoords/geom"
)

// Mode is the interaction state machine's current state.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Brushing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Brushing:
		return "brushing"
	}
	return "unknown"
}

// Selection is the record-level interactive state exposed to the host: the
// clicked record and the record under the pointer. Both survive redraws,
// and survive record-set updates as long as a record with the same ID
// remains.
type Selection struct {
	Selected *parcoords.Record
	Hovered  *parcoords.Record
}

// Config sets up a Controller. The zero value of every field except Width
// and Height is usable.
type Config struct {
	// Width and Height are the plot's pixel dimensions.
	Width, Height float64

	// HoverThreshold is the maximum distance in pixels between the
	// pointer and a polyline for the line to count as hovered.
	// Defaults to 50.
	HoverThreshold float64

	// SettleDelay is how long axes animate to their settled positions
	// after a drag ends; polyline geometry snaps to the new order only
	// once the animation completes. Defaults to 500ms.
	SettleDelay time.Duration

	// DebounceDelay is the quiescence interval for coalescing
	// schema/options/record updates into one recompute. Defaults to
	// 100ms.
	DebounceDelay time.Duration

	// OnRedraw, if set, is called after every recompute so the host can
	// repaint.
	OnRedraw func(*Controller)
}

// A Controller orchestrates the axis model, polyline geometry and brush
// filter in response to pointer, drag, brush and input-change events.
//
// Controller methods are not safe for concurrent use; they belong to the
// host's event loop.
type Controller struct {
	cfg Config

	schema  parcoords.Schema
	opts    parcoords.Options
	records []*parcoords.Record

	model *axis.Model
	err   error

	mode      Mode
	dragAxis  *axis.State
	brushAxis *axis.State

	sel Selection

	paths   []geom.Path
	visible []geom.Path

	pendingSchema  *parcoords.Schema
	pendingOpts    *parcoords.Options
	pendingRecords []*parcoords.Record
	recordsPending bool

	debounce    *Debouncer
	settleTimer *time.Timer
}

// New builds a Controller over the schema, options and initial records and
// runs the first recompute synchronously. A schema whose columns have no
// valid values yet is not an error here; the plot stays empty (Err reports
// why) until usable records arrive.
func New(schema parcoords.Schema, opts parcoords.Options, recs []*parcoords.Record, cfg Config) *Controller {
	if cfg.HoverThreshold == 0 {
		cfg.HoverThreshold = 50
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = 500 * time.Millisecond
	}
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	c := &Controller{cfg: cfg, schema: schema, opts: opts, records: recs}
	c.debounce = NewDebouncer(cfg.DebounceDelay, c.applyPending)
	c.rebuildModel()
	c.refresh()
	return c
}

// Model returns the current axis model, or nil while no configuration has
// produced usable axes.
func (c *Controller) Model() *axis.Model { return c.model }

// Err returns the reason the plot is currently empty (for example a column
// with no valid values), or nil.
func (c *Controller) Err() error { return c.err }

// Mode returns the interaction state machine's current state.
func (c *Controller) Mode() Mode { return c.mode }

// Selection returns the current selected and hovered records.
func (c *Controller) Selection() Selection { return c.sel }

// Paths returns every valid record's polyline under the current geometry.
func (c *Controller) Paths() []geom.Path { return c.paths }

// VisiblePaths returns the polylines of records passing every active
// brush; only these render colored and only these are hit-tested.
func (c *Controller) VisiblePaths() []geom.Path { return c.visible }

// SetSchema schedules a full reset: new axes in identity order, no
// brushes, cleared drag state. Coalesced by the debouncer.
func (c *Controller) SetSchema(schema parcoords.Schema) {
	c.pendingSchema = &schema
	c.debounce.Trigger()
}

// SetOptions schedules a scale/color rebuild. Coalesced by the debouncer.
func (c *Controller) SetOptions(opts parcoords.Options) {
	c.pendingOpts = &opts
	c.debounce.Trigger()
}

// SetRecords schedules a record-set replacement. Selection and hover carry
// over to records with the same ID; records that disappeared resolve to
// none. Coalesced by the debouncer.
func (c *Controller) SetRecords(recs []*parcoords.Record) {
	c.pendingRecords = recs
	c.recordsPending = true
	c.debounce.Trigger()
}

// Flush applies any pending schema/options/record updates and any pending
// drag-settle geometry refresh immediately.
func (c *Controller) Flush() {
	c.debounce.Flush()
	if c.settleTimer != nil && c.settleTimer.Stop() {
		c.refresh()
	}
	c.settleTimer = nil
}

// Refresh recomputes geometry and visibility from the current model
// immediately. Hosts call it after mutating the model directly, for
// example a programmatic SetOrder.
func (c *Controller) Refresh() {
	c.refresh()
}

// Close discards pending timers.
func (c *Controller) Close() {
	c.debounce.Stop()
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
}

// applyPending is the debounced recompute: it applies the most recent
// pending updates in dependency order (schema reset, then options, then
// records) and refreshes derived state once.
func (c *Controller) applyPending() {
	schema, opts, recs := c.pendingSchema, c.pendingOpts, c.pendingRecords
	recsPending := c.recordsPending
	c.pendingSchema, c.pendingOpts, c.pendingRecords = nil, nil, nil
	c.recordsPending = false

	if opts != nil {
		c.opts = *opts
	}
	if recsPending {
		c.records = recs
	}
	if schema != nil {
		c.schema = *schema
		c.model = nil // reset axes: identity order, no brushes
		c.sel = Selection{}
		c.mode = Idle
		c.dragAxis, c.brushAxis = nil, nil
	}

	c.rebuildModel()
	c.resolveSelection()
	c.refresh()
}

// rebuildModel re-runs the scale/axis tier. An existing model is updated
// in place so axis order and brush selections survive record and option
// changes; only a schema change (model == nil) builds fresh axes.
func (c *Controller) rebuildModel() {
	if c.model == nil {
		m, err := axis.New(c.schema, c.opts, c.records, c.cfg.Width, c.cfg.Height)
		if err != nil {
			c.err = err
			return
		}
		c.model, c.err = m, nil
		return
	}
	if err := c.model.SetOptions(c.opts); err != nil {
		c.err = err
		return
	}
	if err := c.model.SetRecords(c.records); err != nil {
		c.err = err
		return
	}
	c.err = nil
}

// resolveSelection re-resolves selection and hover by record ID after a
// record-set change, so downstream consumers keep a stable value across
// updates and never hold a stale reference.
func (c *Controller) resolveSelection() {
	c.sel.Selected = c.findByID(c.sel.Selected)
	c.sel.Hovered = c.findByID(c.sel.Hovered)
}

func (c *Controller) findByID(r *parcoords.Record) *parcoords.Record {
	if r == nil || c.model == nil {
		return nil
	}
	for _, cand := range c.model.Records() {
		if cand.ID == r.ID {
			return cand
		}
	}
	return nil
}

// refresh is the final recompute tier: rebuild polyline geometry and the
// passing set from the current model, then hand control to the host's
// redraw hook. With no usable model the plot renders nothing.
func (c *Controller) refresh() {
	if c.err != nil || c.model == nil {
		c.paths, c.visible = nil, nil
	} else {
		c.paths = geom.Paths(c.model.Records(), c.model.Axes())
		c.visible = c.visible[:0]
		for _, p := range c.paths {
			if c.model.Passes(p.Record) {
				c.visible = append(c.visible, p)
			}
		}
	}
	if c.cfg.OnRedraw != nil {
		c.cfg.OnRedraw(c)
	}
}
