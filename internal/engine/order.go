package engine

import "github.com/emeraldbistro/table-service/internal/model"

// CreateOrderRequest carries the inputs for a new order.  People is the
// party size; 0 means the customer does not need a table and the order
// goes straight to the kitchen.
type CreateOrderRequest struct {
	CustomerName  string
	Items         []model.OrderItem
	Note          string
	People        int
	PaymentMethod string
	Discount      float64
	TaxRate       float64
}

// CreateOrder validates the request, computes the bill, generates an
// identifier and records the order in the ledger.  When a table is
// requested it is allocated best-fit in the same critical section; if
// no free table fits, the party joins the waiting queue and the order is
// recorded with StatusWaiting.  The returned order is a copy; capacity
// exhaustion is not an error.
func (e *Engine) CreateOrder(req CreateOrderRequest) (model.Order, error) {
	if req.CustomerName == "" {
		return model.Order{}, ErrNameRequired
	}
	if len(req.Items) == 0 {
		return model.Order{}, ErrNoItems
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 || it.Price < 0 {
			return model.Order{}, ErrInvalidItem
		}
	}
	if req.Discount < 0 || req.TaxRate < 0 || req.People < 0 {
		return model.Order{}, ErrInvalidAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	totals := ComputeTotals(req.Items, req.Discount, req.TaxRate)
	order := &model.Order{
		ID:            e.nextOrderID(),
		CustomerName:  req.CustomerName,
		Items:         append([]model.OrderItem(nil), req.Items...),
		Note:          req.Note,
		People:        req.People,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		TaxRate:       req.TaxRate,
		TaxAmount:     totals.TaxAmount,
		TotalAmount:   totals.Total,
		Status:        model.StatusPreparing,
		CreatedAt:     e.now(),
	}

	if req.People > 0 {
		if table := e.bestFit(req.People); table != nil {
			e.seat(table, req.CustomerName, req.People, order.ID)
			n := table.Number
			order.TableNumber = &n
		} else {
			order.Status = model.StatusWaiting
			e.enqueue(req.CustomerName, req.People, order.ID)
		}
	}

	e.active = append(e.active, order)
	return copyOrder(order), nil
}

// Orders returns the active-ledger orders whose status is in the given
// set, in creation order.  An empty set matches every active order.
// Completed orders live in the archive and never appear here.
func (e *Engine) Orders(statuses ...string) []model.Order {
	want := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.Order, 0, len(e.active))
	for _, o := range e.active {
		if len(want) == 0 || want[o.Status] {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

// MarkReady transitions an order from preparing to ready, signalling
// that the kitchen has finished it.  Orders in any other state are
// rejected: a waiting party has no food being prepared yet and the
// lifecycle never regresses.
func (e *Engine) MarkReady(orderID string) (model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	o := e.findActive(orderID)
	if o == nil {
		return model.Order{}, ErrOrderNotFound
	}
	if o.Status != model.StatusPreparing {
		return model.Order{}, ErrNotPreparing
	}
	o.Status = model.StatusReady
	return copyOrder(o), nil
}

// ReviseOrder updates the discount and/or payment method of an active
// order and recomputes tax and total from the stored subtotal and tax
// rate.  Nil arguments leave the corresponding field untouched.
// Completed orders are frozen and yield ErrOrderCompleted.
func (e *Engine) ReviseOrder(orderID string, discount *float64, paymentMethod *string) (model.Order, error) {
	if discount != nil && *discount < 0 {
		return model.Order{}, ErrInvalidAmount
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	o := e.findActive(orderID)
	if o == nil {
		if _, archived := e.findArchived(orderID); archived {
			return model.Order{}, ErrOrderCompleted
		}
		return model.Order{}, ErrOrderNotFound
	}
	if paymentMethod != nil {
		o.PaymentMethod = *paymentMethod
	}
	if discount != nil {
		totals := ComputeTotals(o.Items, *discount, o.TaxRate)
		o.Discount = totals.Discount
		o.TaxAmount = totals.TaxAmount
		o.TotalAmount = totals.Total
	}
	return copyOrder(o), nil
}

// findArchived looks up a completed order in the archive.  Callers must
// hold the lock.
func (e *Engine) findArchived(orderID string) (model.Order, bool) {
	for i := range e.archive {
		if e.archive[i].ID == orderID {
			return copyOrder(&e.archive[i]), true
		}
	}
	return model.Order{}, false
}

// Bill looks up an order for billing, searching the active ledger first
// and the completed-order archive second.
func (e *Engine) Bill(orderID string) (model.Order, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if o := e.findActive(orderID); o != nil {
		return copyOrder(o), true
	}
	return e.findArchived(orderID)
}
