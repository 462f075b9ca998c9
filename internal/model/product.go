package model

import (
	"time"
)

// BaseQuantity is the amount the nutrient columns of a product refer to.
const BaseQuantity = 100.0

const DefaultServingUnit = "g"

// Product holds nutrient values per BaseQuantity of its serving unit.
type Product struct {
	ID          string    `db:"id" json:"id" yaml:"-"`
	Name        string    `db:"name" json:"name" yaml:"name"`
	Calories    float64   `db:"calories" json:"calories" yaml:"calories"`
	Protein     float64   `db:"protein" json:"protein" yaml:"protein"`
	Carbs       float64   `db:"carbs" json:"carbs" yaml:"carbs"`
	Fat         float64   `db:"fat" json:"fat" yaml:"fat"`
	ServingUnit string    `db:"serving_unit" json:"serving_unit" yaml:"serving_unit"`
	CreatedAt   time.Time `db:"created_at" json:"created_at" yaml:"-"`
}
