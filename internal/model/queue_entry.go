package model

import "time"

// QueueEntry is a snapshot of a not-yet-seated party waiting for a
// table.  Entries are kept in arrival order and removed exactly once,
// when a freed table is reassigned to the party.  The linked order stays
// in the ledger with StatusWaiting while the entry exists, so the entry
// only carries the seating-relevant fields.
type QueueEntry struct {
	PartyName  string    `json:"party_name"`
	People     int       `json:"people"`
	OrderID    string    `json:"order_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
