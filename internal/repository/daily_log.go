package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fitstack/macrotracker/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrLogNotFound = errors.New("log entry not found")
)

type DailyLogRepository interface {
	ItemsForDate(ctx context.Context, date string) ([]model.LogItem, error)
	ItemsInRange(ctx context.Context, from, to string) ([]model.LogItem, error)
	Create(ctx context.Context, entry *model.LogEntry) error
	Delete(ctx context.Context, logID string) error
}

type dailyLogRepository struct {
	db *sqlx.DB
}

func NewDailyLogRepository(db *sqlx.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

const logItemColumns = `l.id, l.product_id, l.quantity, l.log_date, l.created_at,
	p.name, p.serving_unit, p.calories, p.protein, p.carbs, p.fat`

// ItemsForDate returns the entries of one calendar date with their product
// fields, oldest first. No entries yields an empty slice.
func (r *dailyLogRepository) ItemsForDate(ctx context.Context, date string) ([]model.LogItem, error) {
	items := []model.LogItem{}
	query := `SELECT ` + logItemColumns + `
	          FROM daily_logs l JOIN products p ON p.id = l.product_id
	          WHERE l.log_date = $1
	          ORDER BY l.created_at ASC, l.id ASC`

	err := r.db.SelectContext(ctx, &items, query, date)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ItemsInRange returns the entries dated from..to inclusive.
func (r *dailyLogRepository) ItemsInRange(ctx context.Context, from, to string) ([]model.LogItem, error) {
	items := []model.LogItem{}
	query := `SELECT ` + logItemColumns + `
	          FROM daily_logs l JOIN products p ON p.id = l.product_id
	          WHERE l.log_date >= $1 AND l.log_date <= $2
	          ORDER BY l.log_date ASC, l.created_at ASC, l.id ASC`

	err := r.db.SelectContext(ctx, &items, query, from, to)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *dailyLogRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO daily_logs (id, product_id, quantity, log_date, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.ProductID,
		entry.Quantity,
		entry.LogDate,
		entry.CreatedAt,
	)

	return err
}

func (r *dailyLogRepository) Delete(ctx context.Context, logID string) error {
	query := `DELETE FROM daily_logs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, logID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}
