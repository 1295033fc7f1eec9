package engine

import "github.com/emeraldbistro/table-service/internal/model"

// FreeResult describes what a free-table event did: which order was
// completed and, when a queued party was seated in its place, which
// order was promoted.
type FreeResult struct {
	TableNumber int
	Completed   *model.Order
	Reassigned  *model.Order
}

// FreeTable runs the checkout of a table as one logical unit: the
// linked order is completed, stamped and archived, the table is freed,
// and the waiting queue is scanned for the earliest-arrived party that
// fits the table.  If one is found its entry is removed, the party is
// seated with a fresh timestamp and the linked order is promoted to
// preparing at this table.  At most one queued party is seated per free
// event.
//
// The boolean is false when the table is unknown or already free, which
// is a no-op signal rather than an error.  The whole sequence runs
// under the write lock, so the table is never observable half freed or
// half reassigned.
func (e *Engine) FreeTable(number int) (FreeResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	table := e.findTable(number)
	if table == nil || !table.Occupied {
		return FreeResult{}, false
	}
	res := FreeResult{TableNumber: number}

	// Complete and archive the order that occupied the table.
	if o := e.findActive(table.Current.OrderID); o != nil {
		o.Status = model.StatusCompleted
		ts := e.now()
		o.CompletedAt = &ts
		e.archive = append(e.archive, copyOrder(o))
		e.dropActive(o.ID)
		done := copyOrder(o)
		res.Completed = &done
	}

	table.Occupied = false
	table.Current = nil

	// Seat the first waiting party that fits the freed table.
	if entry := e.findEligible(table.Capacity); entry != nil {
		e.removeQueued(entry.OrderID)
		e.seat(table, entry.PartyName, entry.People, entry.OrderID)
		if o := e.findActive(entry.OrderID); o != nil {
			o.Status = model.StatusPreparing
			n := table.Number
			o.TableNumber = &n
			promoted := copyOrder(o)
			res.Reassigned = &promoted
		}
	}
	return res, true
}

// dropActive removes an order from the active ledger view.  Callers
// must hold the write lock.
func (e *Engine) dropActive(orderID string) {
	for i, o := range e.active {
		if o.ID == orderID {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}
