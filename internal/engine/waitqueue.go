package engine

import "github.com/emeraldbistro/table-service/internal/model"

// enqueue appends a waiting party to the tail of the queue.  Parties
// are considered strictly in arrival order.  Callers must hold the
// write lock.
func (e *Engine) enqueue(partyName string, people int, orderID string) {
	e.queue = append(e.queue, &model.QueueEntry{
		PartyName:  partyName,
		People:     people,
		OrderID:    orderID,
		EnqueuedAt: e.now(),
	})
}

// findEligible returns the first queued entry, in arrival order, whose
// party fits the given capacity.  The scan deliberately picks the
// earliest-arrived eligible party rather than the best-fitting one:
// fairness wins over seat efficiency.  Returns nil when nobody fits.
// Callers must hold the lock.
func (e *Engine) findEligible(capacity int) *model.QueueEntry {
	for _, entry := range e.queue {
		if entry.People <= capacity {
			return entry
		}
	}
	return nil
}

// removeQueued deletes the entry for the given order from the queue.
// Removing an entry that is no longer queued is a no-op, so removal is
// idempotent.  Callers must hold the write lock.
func (e *Engine) removeQueued(orderID string) {
	for i, entry := range e.queue {
		if entry.OrderID == orderID {
			e.queue = append(e.queue[:i], e.queue[i+1:]...)
			return
		}
	}
}

// Queue returns a snapshot of the waiting queue in arrival order.
func (e *Engine) Queue() []model.QueueEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.QueueEntry, 0, len(e.queue))
	for _, entry := range e.queue {
		out = append(out, *entry)
	}
	return out
}
