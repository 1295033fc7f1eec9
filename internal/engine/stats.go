package engine

import "github.com/emeraldbistro/table-service/internal/model"

// TableView is a table snapshot enriched with the detail of the linked
// order, as shown on the manager dashboard.
type TableView struct {
	model.Table
	Order *model.Order `json:"order,omitempty"`
}

// DashboardSnapshot is the manager's consistent view of the whole
// floor: every table with its order detail, the waiting queue, the
// active orders, and the completed/revenue aggregates.
type DashboardSnapshot struct {
	Tables         []TableView        `json:"tables"`
	Queue          []model.QueueEntry `json:"queue"`
	ActiveOrders   []model.Order      `json:"active_orders"`
	CompletedCount int                `json:"completed_count"`
	Revenue        float64            `json:"revenue"`
}

// Stats aggregates order counts and revenue for reporting.
type Stats struct {
	TotalOrders    int     `json:"total_orders"`
	ActiveOrders   int     `json:"active_orders"`
	WaitingParties int     `json:"waiting_parties"`
	CompletedCount int     `json:"completed_count"`
	Revenue        float64 `json:"revenue"`
	OccupiedTables int     `json:"occupied_tables"`
	FreeTables     int     `json:"free_tables"`
}

// Dashboard takes a single consistent snapshot for the manager view.
// Everything is copied under one read lock so tables, queue and orders
// can never disagree with each other.
func (e *Engine) Dashboard() DashboardSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := DashboardSnapshot{
		CompletedCount: len(e.archive),
		Revenue:        e.revenueLocked(),
	}
	for _, t := range e.tables {
		view := TableView{Table: copyTable(t)}
		if t.Occupied {
			if o := e.findActive(t.Current.OrderID); o != nil {
				detail := copyOrder(o)
				view.Order = &detail
			}
		}
		snap.Tables = append(snap.Tables, view)
	}
	for _, entry := range e.queue {
		snap.Queue = append(snap.Queue, *entry)
	}
	for _, o := range e.active {
		snap.ActiveOrders = append(snap.ActiveOrders, copyOrder(o))
	}
	return snap
}

// Statistics returns the aggregate counters.  Revenue counts every
// archived order exactly once; orders still in the active ledger
// contribute nothing until they complete.
func (e *Engine) Statistics() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := Stats{
		TotalOrders:    int(e.seq),
		ActiveOrders:   len(e.active),
		WaitingParties: len(e.queue),
		CompletedCount: len(e.archive),
		Revenue:        e.revenueLocked(),
	}
	for _, t := range e.tables {
		if t.Occupied {
			s.OccupiedTables++
		} else {
			s.FreeTables++
		}
	}
	return s
}

// revenueLocked sums the totals of all archived orders.  Callers must
// hold the lock.
func (e *Engine) revenueLocked() float64 {
	sum := 0.0
	for i := range e.archive {
		sum += e.archive[i].TotalAmount
	}
	return round2(sum)
}
