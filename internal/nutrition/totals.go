// Package nutrition turns logged portions into nutrient totals.
// Everything here is pure arithmetic over rows already read from the store.
package nutrition

import (
	"github.com/fitstack/macrotracker/internal/model"
)

// Totals is one value per tracked nutrient.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
	}
}

// Portion is a quantity of something with per-100-unit nutrient values.
type Portion struct {
	Per100   Totals
	Quantity float64
}

// PerHundred returns the nutrient values of a product as stored.
func PerHundred(p model.Product) Totals {
	return Totals{Calories: p.Calories, Protein: p.Protein, Carbs: p.Carbs, Fat: p.Fat}
}

// ForQuantity scales per-100 values to the consumed quantity.
func ForQuantity(per100 Totals, quantity float64) Totals {
	ratio := quantity / model.BaseQuantity
	return Totals{
		Calories: per100.Calories * ratio,
		Protein:  per100.Protein * ratio,
		Carbs:    per100.Carbs * ratio,
		Fat:      per100.Fat * ratio,
	}
}

// PortionOf builds a portion from a joined log row.
func PortionOf(item model.LogItem) Portion {
	return Portion{
		Per100:   Totals{Calories: item.Calories, Protein: item.Protein, Carbs: item.Carbs, Fat: item.Fat},
		Quantity: item.Quantity,
	}
}

// Portions converts joined log rows in order.
func Portions(items []model.LogItem) []Portion {
	portions := make([]Portion, 0, len(items))
	for _, item := range items {
		portions = append(portions, PortionOf(item))
	}
	return portions
}

// DailyTotals sums every portion. No portions yields zero totals.
func DailyTotals(portions []Portion) Totals {
	var totals Totals
	for _, p := range portions {
		totals = totals.Add(ForQuantity(p.Per100, p.Quantity))
	}
	return totals
}
