package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/emeraldbistro/table-service/internal/catalog"
	"github.com/emeraldbistro/table-service/internal/model"
)

// orderIDPrefix is combined with a zero-padded monotonic counter to form
// human-readable order identifiers such as "EMD-0001".  Identifiers are
// unique for the lifetime of the process and never reused.
const orderIDPrefix = "EMD"

// Engine is the single owner of all mutable restaurant state: the
// tables, the active order ledger, the waiting queue, the order counter
// and the completed-order archive.  Every state-mutating operation runs
// under the write lock so that table, ledger and queue are always
// observed as one consistent unit; snapshot queries share the read
// lock.  No operation blocks on anything external while holding the
// lock.
type Engine struct {
	mu      sync.RWMutex
	tables  []*model.Table
	active  []*model.Order
	queue   []*model.QueueEntry
	archive []model.Order
	seq     uint64

	// now is the clock used for timestamps; replaced in tests.
	now func() time.Time
}

// New builds an engine over the catalog's floor plan.  All tables start
// free; the ledger, queue and archive start empty.
func New(cat *catalog.Catalog) *Engine {
	e := &Engine{now: time.Now}
	e.tables = make([]*model.Table, 0, len(cat.Tables))
	for _, def := range cat.Tables {
		e.tables = append(e.tables, &model.Table{Number: def.Number, Capacity: def.Capacity})
	}
	return e
}

// nextOrderID advances the counter and formats the next identifier.
// Callers must hold the write lock.
func (e *Engine) nextOrderID() string {
	e.seq++
	return fmt.Sprintf("%s-%04d", orderIDPrefix, e.seq)
}

// findActive returns the active-ledger order with the given ID, or nil.
// Callers must hold the lock.
func (e *Engine) findActive(orderID string) *model.Order {
	for _, o := range e.active {
		if o.ID == orderID {
			return o
		}
	}
	return nil
}

// findTable returns the table with the given number, or nil.  Callers
// must hold the lock.
func (e *Engine) findTable(number int) *model.Table {
	for _, t := range e.tables {
		if t.Number == number {
			return t
		}
	}
	return nil
}

// Tables returns a snapshot of every table.  Occupancy records are
// copied so callers can never observe a half-updated table.
func (e *Engine) Tables() []model.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.Table, 0, len(e.tables))
	for _, t := range e.tables {
		out = append(out, copyTable(t))
	}
	return out
}

func copyTable(t *model.Table) model.Table {
	ct := *t
	if t.Current != nil {
		cur := *t.Current
		ct.Current = &cur
	}
	return ct
}

func copyOrder(o *model.Order) model.Order {
	co := *o
	co.Items = append([]model.OrderItem(nil), o.Items...)
	if o.TableNumber != nil {
		n := *o.TableNumber
		co.TableNumber = &n
	}
	if o.CompletedAt != nil {
		ts := *o.CompletedAt
		co.CompletedAt = &ts
	}
	return co
}
