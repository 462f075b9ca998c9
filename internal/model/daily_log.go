package model

import (
	"time"
)

// DateLayout is the storage and wire format of log_date.
const DateLayout = "2006-01-02"

type LogEntry struct {
	ID        string    `db:"id" json:"id"`
	ProductID string    `db:"product_id" json:"product_id"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	LogDate   string    `db:"log_date" json:"log_date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LogItem is a log entry read together with the product it references.
type LogItem struct {
	ID          string    `db:"id" json:"id"`
	ProductID   string    `db:"product_id" json:"product_id"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	LogDate     string    `db:"log_date" json:"log_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Name        string    `db:"name" json:"name"`
	ServingUnit string    `db:"serving_unit" json:"serving_unit"`
	Calories    float64   `db:"calories" json:"calories"`
	Protein     float64   `db:"protein" json:"protein"`
	Carbs       float64   `db:"carbs" json:"carbs"`
	Fat         float64   `db:"fat" json:"fat"`
}
