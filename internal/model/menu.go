package model

// MenuItem is an entry on the restaurant menu.  The menu is loaded once
// at startup and read-only afterwards; orders copy the name and price
// into their own line items.
type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TableDef declares a table in the catalog file: its number and how many
// guests it seats.
type TableDef struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}
