package nutrition

import (
	"github.com/fitstack/macrotracker/internal/model"
)

// ProgressRatio is total/goal clamped to [0, 1]. A goal of zero or less
// means "no goal set" and yields 0.
func ProgressRatio(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	ratio := total / goal
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Ratio    float64 `json:"ratio"`
}

type Progress struct {
	Calories NutrientProgress `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Carbs    NutrientProgress `json:"carbs"`
	Fat      NutrientProgress `json:"fat"`
}

func nutrientProgress(consumed, goal float64) NutrientProgress {
	return NutrientProgress{Consumed: consumed, Goal: goal, Ratio: ProgressRatio(consumed, goal)}
}

// ProgressAgainst compares totals with each goal of the set.
func ProgressAgainst(totals Totals, goals model.GoalSet) Progress {
	return Progress{
		Calories: nutrientProgress(totals.Calories, goals.Calories),
		Protein:  nutrientProgress(totals.Protein, goals.Protein),
		Carbs:    nutrientProgress(totals.Carbs, goals.Carbs),
		Fat:      nutrientProgress(totals.Fat, goals.Fat),
	}
}
