package model

import "time"

// Table describes a physical table on the restaurant floor.  Tables are
// uniquely identified by their number, which is stable for the lifetime
// of the process.  A table is either free or carries exactly one
// Occupancy record; the two views must never disagree.
//
// Fields:
//  Number   – unique table number printed on the floor plan.
//  Capacity – number of guests the table seats (always positive).
//  Occupied – whether a party is currently seated here.
//  Current  – occupancy record of the seated party (nil when free).
type Table struct {
	Number   int        `json:"number"`
	Capacity int        `json:"capacity"`
	Occupied bool       `json:"occupied"`
	Current  *Occupancy `json:"current,omitempty"`
}

// Occupancy records the party currently seated at a table together with
// the order that brought them there.  People never exceeds the table's
// capacity while the record is attached.
//
// Fields:
//  PartyName – name the party was seated under.
//  People    – size of the seated party.
//  SeatedAt  – timestamp the party took the table.
//  OrderID   – identifier of the linked order.
type Occupancy struct {
	PartyName string    `json:"party_name"`
	People    int       `json:"people"`
	SeatedAt  time.Time `json:"seated_at"`
	OrderID   string    `json:"order_id"`
}
