package axis

import (
	"fmt"
	"sort"
)

func errBadOrder(order []int) error {
	return fmt.Errorf("axis: order %v is not a permutation of the schema columns", order)
}

// StartDrag marks the axis as dragged, starting from its settled position.
func (m *Model) StartDrag(a *State) {
	a.dragging = true
	a.dragX = a.x
}

// MoveDrag moves the dragged axis to the pointer's x position, clamped to
// [0, Width], and reorders the axes so the dragged axis swaps with any
// neighbor it has passed. The sort is stable, so axes at exactly equal
// positions keep their previous relative order.
func (m *Model) MoveDrag(a *State, x float64) {
	if !a.dragging {
		return
	}
	if x < 0 {
		x = 0
	} else if x > m.Width {
		x = m.Width
	}
	a.dragX = x
	sort.SliceStable(m.axes, func(i, j int) bool {
		return m.axes[i].X() < m.axes[j].X()
	})
	// Re-settle the non-dragged axes around the new order; the dragged
	// axis keeps following the pointer until EndDrag.
	m.settle()
}

// EndDrag releases the dragged axis; all axes then occupy the settled
// positions of the final order. The caller animates the transition and
// refreshes geometry when it completes.
func (m *Model) EndDrag(a *State) {
	a.dragging = false
	m.settle()
}

// Order returns the current draw order as column indexes.
func (m *Model) Order() []int {
	order := make([]int, len(m.axes))
	for i, a := range m.axes {
		order[i] = a.Col.Index
	}
	return order
}

// SetOrder rearranges the axes into the given column-index order, which
// must be a permutation of the schema's column indexes.
func (m *Model) SetOrder(order []int) error {
	if len(order) != len(m.axes) {
		return errBadOrder(order)
	}
	axes := make([]*State, 0, len(order))
	for _, col := range order {
		a := m.Axis(col)
		if a == nil {
			return errBadOrder(order)
		}
		for _, prev := range axes {
			if prev == a {
				return errBadOrder(order)
			}
		}
		axes = append(axes, a)
	}
	m.axes = axes
	m.settle()
	return nil
}
