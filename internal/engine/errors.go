// Package engine implements the table allocation, waiting queue, order
// ledger and billing core of the restaurant service.  This file defines
// the sentinel errors shared across its operations.  These values allow
// the handler layer to distinguish failure scenarios: validation
// problems become HTTP 400 responses, unknown identifiers become 404
// and illegal lifecycle transitions become 409.
package engine

import "errors"

// ErrNameRequired is returned when an order is created without a
// customer name.  Handlers should translate this into an HTTP 400
// response.
var ErrNameRequired = errors.New("customer name is required")

// ErrNoItems is returned when an order is created with an empty item
// list.  Handlers should translate this into an HTTP 400 response.
var ErrNoItems = errors.New("at least one item is required")

// ErrInvalidItem is returned when a line item carries a non-positive
// quantity or a negative price.
var ErrInvalidItem = errors.New("invalid order item")

// ErrInvalidAmount is returned when a negative discount or tax rate is
// supplied.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrOrderNotFound is returned when no order with the given identifier
// exists in the active ledger.  Handlers should translate this into an
// HTTP 404 response.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderCompleted is returned when a revision is attempted on an
// order that has already been completed.  Completed orders are frozen;
// handlers should translate this into an HTTP 409 response.
var ErrOrderCompleted = errors.New("order already completed")

// ErrNotPreparing is returned when an order is marked ready while it is
// not in the preparing state, such as a party still waiting for a table
// or an order already marked ready.  Handlers should translate this
// into an HTTP 409 response.
var ErrNotPreparing = errors.New("order is not being prepared")
