package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fitstack/macrotracker/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGoalsNotSet = errors.New("goals not set")
)

type GoalRepository interface {
	Goals(ctx context.Context) (*model.GoalSet, error)
	Upsert(ctx context.Context, goals *model.GoalSet) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Goals(ctx context.Context) (*model.GoalSet, error) {
	goals := &model.GoalSet{}
	query := `SELECT daily_calories, daily_protein, daily_carbs, daily_fat, updated_at
	          FROM user_goals WHERE id = $1`

	err := r.db.GetContext(ctx, goals, query, model.GoalSetID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalsNotSet
	}
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// Upsert replaces the singleton row in one statement.
func (r *goalRepository) Upsert(ctx context.Context, goals *model.GoalSet) error {
	goals.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO user_goals (id, daily_calories, daily_protein, daily_carbs, daily_fat, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (id) DO UPDATE
	          SET daily_calories = excluded.daily_calories, daily_protein = excluded.daily_protein,
	              daily_carbs = excluded.daily_carbs, daily_fat = excluded.daily_fat,
	              updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		model.GoalSetID,
		goals.Calories,
		goals.Protein,
		goals.Carbs,
		goals.Fat,
		goals.UpdatedAt,
	)

	return err
}
