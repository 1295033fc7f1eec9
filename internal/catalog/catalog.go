// Package catalog loads the static floor plan and menu the restaurant
// operates with.  The catalog is read once at startup and never mutated
// afterwards; the engine copies table definitions into its own state and
// only reads the menu.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/emeraldbistro/table-service/internal/model"
)

// Catalog holds the immutable table and menu definitions.
type Catalog struct {
	Tables []model.TableDef
	Menu   []model.MenuItem
}

// catalogFile mirrors the JSON layout of the catalog file:
//
//	{"tables": [{"number": 1, "capacity": 2}], "menu": [{"name": "Tea", "price": 2.5}]}
type catalogFile struct {
	Tables []model.TableDef `json:"tables"`
	Menu   []model.MenuItem `json:"menu"`
}

// Load reads and validates a catalog from the JSON file at path.  When
// path is empty, the built-in Default catalog is returned so the server
// can start without any configuration.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	c := &Catalog{Tables: f.Tables, Menu: f.Menu}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate enforces the catalog invariants: at least one table, unique
// positive table numbers, positive capacities and non-negative prices.
func (c *Catalog) validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("catalog defines no tables")
	}
	seen := make(map[int]struct{}, len(c.Tables))
	for _, t := range c.Tables {
		if t.Number <= 0 {
			return fmt.Errorf("table number %d is not positive", t.Number)
		}
		if t.Capacity <= 0 {
			return fmt.Errorf("table %d has non-positive capacity %d", t.Number, t.Capacity)
		}
		if _, dup := seen[t.Number]; dup {
			return fmt.Errorf("duplicate table number %d", t.Number)
		}
		seen[t.Number] = struct{}{}
	}
	for _, m := range c.Menu {
		if m.Name == "" {
			return fmt.Errorf("menu item with empty name")
		}
		if m.Price < 0 {
			return fmt.Errorf("menu item %q has negative price", m.Name)
		}
	}
	return nil
}

// Default returns the built-in floor plan and menu used when no catalog
// file is configured.
func Default() *Catalog {
	return &Catalog{
		Tables: []model.TableDef{
			{Number: 1, Capacity: 2},
			{Number: 2, Capacity: 2},
			{Number: 3, Capacity: 4},
			{Number: 4, Capacity: 4},
			{Number: 5, Capacity: 6},
			{Number: 6, Capacity: 8},
		},
		Menu: []model.MenuItem{
			{Name: "Emerald Salad", Price: 7.5},
			{Name: "Grilled Chicken", Price: 12.0},
			{Name: "Beef Noodles", Price: 10.5},
			{Name: "Vegetable Curry", Price: 9.0},
			{Name: "Iced Tea", Price: 2.5},
			{Name: "Espresso", Price: 3.0},
		},
	}
}
