package model

import "time"

// Order lifecycle statuses.  The lifecycle is linear: an order either
// starts at StatusWaiting (a seating request that could not be satisfied
// immediately) or at StatusPreparing, and only ever moves forward.
// StatusCompleted is terminal.
const (
	StatusWaiting   = "WAITING_FOR_TABLE"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
)

// OrderItem is a single line on an order.  Quantity is always positive
// and Price is never negative; both are validated at order creation and
// immutable afterwards.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is the authoritative record of a customer order.  Monetary
// fields always satisfy
//
//	TotalAmount == round2((Subtotal - Discount) * (1 + TaxRate/100))
//
// and are recomputed together whenever the discount changes.  Once the
// items are finalised at creation, the status transition methods on the
// engine are the only permitted mutation path.
//
// Fields:
//  ID           – generated identifier, unique per process run.
//  CustomerName – name the order was placed under.
//  Items        – ordered line items.
//  Note         – free-text note for the kitchen.
//  People       – party size; 0 means no seating was requested.
//  PaymentMethod – how the customer intends to pay.
//  Subtotal     – sum of price*quantity over all items.
//  Discount     – flat discount amount, clamped to the subtotal.
//  TaxRate      – tax rate in percent applied after the discount.
//  TaxAmount    – computed tax on the discounted subtotal.
//  TotalAmount  – final amount, rounded to two decimal places.
//  TableNumber  – assigned table (nil while waiting or takeaway).
//  Status       – current lifecycle status.
//  CreatedAt    – creation timestamp.
//  CompletedAt  – completion timestamp (nil until completed).
type Order struct {
	ID            string      `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	Items         []OrderItem `json:"items"`
	Note          string      `json:"note,omitempty"`
	People        int         `json:"people"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	TaxRate       float64     `json:"tax_rate"`
	TaxAmount     float64     `json:"tax_amount"`
	TotalAmount   float64     `json:"total_amount"`
	TableNumber   *int        `json:"table_number"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
}
