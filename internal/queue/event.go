// Package queue defines message payloads exchanged over the message broker.
package queue

import "github.com/emeraldbistro/table-service/internal/model"

// Kinds of order sync events.
const (
	EventOrderCreated   = "order.created"
	EventOrderSeated    = "order.seated"
	EventOrderCompleted = "order.completed"
)

// OrderSyncEvent is the best-effort copy of order state pushed to the
// external reporting collaborator.  It carries the full order snapshot
// so downstream consumers can log or aggregate without querying the
// service.  Delivery is fire-and-forget: losing an event never affects
// the in-memory state.
type OrderSyncEvent struct {
	Event      string      `json:"event"`
	Order      model.Order `json:"order"`
	OccurredAt string      `json:"occurred_at"`
}
