package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	path := writeCatalog(t, `{
		"tables": [{"number": 1, "capacity": 2}, {"number": 2, "capacity": 4}],
		"menu": [{"name": "Iced Tea", "price": 2.5}]
	}`)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Tables) != 2 || cat.Tables[1].Capacity != 4 {
		t.Fatalf("tables = %+v", cat.Tables)
	}
	if len(cat.Menu) != 1 || cat.Menu[0].Price != 2.5 {
		t.Fatalf("menu = %+v", cat.Menu)
	}
}

func TestLoadInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no tables", `{"tables": [], "menu": []}`},
		{"duplicate table number", `{"tables": [{"number": 1, "capacity": 2}, {"number": 1, "capacity": 4}]}`},
		{"zero capacity", `{"tables": [{"number": 1, "capacity": 0}]}`},
		{"negative table number", `{"tables": [{"number": -3, "capacity": 2}]}`},
		{"negative menu price", `{"tables": [{"number": 1, "capacity": 2}], "menu": [{"name": "Tea", "price": -1}]}`},
		{"unnamed menu item", `{"tables": [{"number": 1, "capacity": 2}], "menu": [{"name": "", "price": 1}]}`},
		{"malformed json", `{"tables": [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeCatalog(t, tt.content)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Tables) == 0 || len(cat.Menu) == 0 {
		t.Fatalf("default catalog incomplete: %+v", cat)
	}
	if err := cat.validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
}
