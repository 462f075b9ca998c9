package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	products, err := LoadFile("testdata/products.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	if products[0].Name != "Chicken Breast" || products[0].Protein != 31 {
		t.Errorf("first product = %+v", products[0])
	}
	if products[0].ServingUnit != "g" {
		t.Errorf("default serving unit = %q, want g", products[0].ServingUnit)
	}
	if products[2].ServingUnit != "ml" {
		t.Errorf("explicit serving unit = %q, want ml", products[2].ServingUnit)
	}
}

func TestParseTrimsNames(t *testing.T) {
	products, err := Parse(strings.NewReader("products:\n  - name: '  Oats '\n    calories: 389\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if products[0].Name != "Oats" {
		t.Errorf("name = %q, want Oats", products[0].Name)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate names", "products:\n  - name: Egg\n  - name: egg\n"},
		{"unknown field", "products:\n  - name: Egg\n    sugar: 1\n"},
		{"malformed", "products: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}
