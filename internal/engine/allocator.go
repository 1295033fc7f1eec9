package engine

import "github.com/emeraldbistro/table-service/internal/model"

// bestFit selects the free table that wastes the fewest seats for a
// party of the given size: the smallest capacity that still fits, ties
// broken by the lowest table number.  It returns nil when no free table
// fits, which is the normal "must wait" outcome rather than an error.
// Callers must hold the write lock; the returned pointer stays valid
// only while the lock is held.
func (e *Engine) bestFit(people int) *model.Table {
	var best *model.Table
	for _, t := range e.tables {
		if t.Occupied || t.Capacity < people {
			continue
		}
		if best == nil || t.Capacity < best.Capacity ||
			(t.Capacity == best.Capacity && t.Number < best.Number) {
			best = t
		}
	}
	return best
}

// seat commits an occupancy record onto a table.  The selection in
// bestFit and this commit happen under the same critical section, so no
// concurrent allocation can observe the table as free in between.
// Callers must hold the write lock.
func (e *Engine) seat(t *model.Table, partyName string, people int, orderID string) {
	t.Occupied = true
	t.Current = &model.Occupancy{
		PartyName: partyName,
		People:    people,
		SeatedAt:  e.now(),
		OrderID:   orderID,
	}
}
