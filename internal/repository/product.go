package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fitstack/macrotracker/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductRepository interface {
	Products(ctx context.Context) ([]*model.Product, error)
	ByID(ctx context.Context, productID string) (*model.Product, error)
	ByName(ctx context.Context, name string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Upsert(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID string) error
}

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Products(ctx context.Context) ([]*model.Product, error) {
	products := []*model.Product{}
	query := `SELECT id, name, calories, protein, carbs, fat, serving_unit, created_at
	          FROM products ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) ByID(ctx context.Context, productID string) (*model.Product, error) {
	product := &model.Product{}
	query := `SELECT id, name, calories, protein, carbs, fat, serving_unit, created_at
	          FROM products WHERE id = $1`

	err := r.db.GetContext(ctx, product, query, productID)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ByName(ctx context.Context, name string) (*model.Product, error) {
	product := &model.Product{}
	query := `SELECT id, name, calories, protein, carbs, fat, serving_unit, created_at
	          FROM products WHERE LOWER(name) = LOWER($1)`

	err := r.db.GetContext(ctx, product, query, name)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	prepareProduct(product)

	query := `INSERT INTO products (id, name, calories, protein, carbs, fat, serving_unit, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Calories,
		product.Protein,
		product.Carbs,
		product.Fat,
		product.ServingUnit,
		product.CreatedAt,
	)

	return err
}

// Upsert inserts the product or, when a product with the same name exists,
// overwrites its nutrient values while keeping its id.
func (r *productRepository) Upsert(ctx context.Context, product *model.Product) error {
	prepareProduct(product)

	query := `INSERT INTO products (id, name, calories, protein, carbs, fat, serving_unit, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (name) DO UPDATE
	          SET calories = excluded.calories, protein = excluded.protein, carbs = excluded.carbs,
	              fat = excluded.fat, serving_unit = excluded.serving_unit
	          RETURNING id`

	return r.db.QueryRowxContext(ctx, query,
		product.ID,
		product.Name,
		product.Calories,
		product.Protein,
		product.Carbs,
		product.Fat,
		product.ServingUnit,
		product.CreatedAt,
	).Scan(&product.ID)
}

// Delete removes the product; its daily logs are removed by the foreign key cascade.
func (r *productRepository) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProductNotFound
	}

	return nil
}

func prepareProduct(product *model.Product) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.ServingUnit == "" {
		product.ServingUnit = model.DefaultServingUnit
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
}
