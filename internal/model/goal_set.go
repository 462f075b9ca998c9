package model

import (
	"time"
)

// GoalSetID is the primary key of the single user_goals row.
const GoalSetID = 1

type GoalSet struct {
	Calories  float64   `db:"daily_calories" json:"daily_calories"`
	Protein   float64   `db:"daily_protein" json:"daily_protein"`
	Carbs     float64   `db:"daily_carbs" json:"daily_carbs"`
	Fat       float64   `db:"daily_fat" json:"daily_fat"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	// IsDefault is set when no goals have been saved yet
	IsDefault bool `db:"-" json:"is_default"`
}
