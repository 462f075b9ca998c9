// Package catalog reads product catalogs used to seed the products table.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fitstack/macrotracker/internal/model"
	"gopkg.in/yaml.v3"
)

var ErrEmptyCatalog = errors.New("catalog has no products")

type document struct {
	Products []model.Product `yaml:"products"`
}

func LoadFile(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a catalog document. Product names are trimmed and a missing
// serving unit defaults to grams. Duplicate names are rejected since the
// products table keys on name.
func Parse(r io.Reader) ([]model.Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	err := dec.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(doc.Products))
	for i := range doc.Products {
		p := &doc.Products[i]
		p.Name = strings.TrimSpace(p.Name)
		if p.ServingUnit == "" {
			p.ServingUnit = model.DefaultServingUnit
		}

		key := strings.ToLower(p.Name)
		if seen[key] {
			return nil, fmt.Errorf("parse catalog: duplicate product %q", p.Name)
		}
		seen[key] = true
	}

	return doc.Products, nil
}
