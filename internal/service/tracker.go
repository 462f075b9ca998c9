package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/fitstack/macrotracker/internal/cache"
	"github.com/fitstack/macrotracker/internal/model"
	"github.com/fitstack/macrotracker/internal/nutrition"
	"github.com/fitstack/macrotracker/internal/repository"
	"github.com/fitstack/macrotracker/internal/validation"
)

type TrackerOptions struct {
	ProductCacheTTL time.Duration
	GoalCacheTTL    time.Duration
	MaxLogQuantity  float64
	DefaultGoals    model.GoalSet
	Clock           cache.Clock
}

// TrackerService is the set of operations the API and CLI call, one per
// user action. Products and goals are served through read-through caches;
// daily logs are always read from the store.
type TrackerService struct {
	products repository.ProductRepository
	logs     repository.DailyLogRepository
	goals    repository.GoalRepository

	productCache *cache.Memo[struct{}, []model.Product]
	goalCache    *cache.Memo[struct{}, model.GoalSet]

	maxQuantity  float64
	defaultGoals model.GoalSet
}

func NewTrackerService(
	products repository.ProductRepository,
	logs repository.DailyLogRepository,
	goals repository.GoalRepository,
	opts TrackerOptions,
) *TrackerService {
	s := &TrackerService{
		products:     products,
		logs:         logs,
		goals:        goals,
		maxQuantity:  opts.MaxLogQuantity,
		defaultGoals: opts.DefaultGoals,
	}
	s.defaultGoals.IsDefault = true

	s.productCache = cache.NewMemo("products", opts.ProductCacheTTL, opts.Clock, s.loadProducts)
	s.goalCache = cache.NewMemo("goals", opts.GoalCacheTTL, opts.Clock, s.loadGoals)

	return s
}

func (s *TrackerService) loadProducts(ctx context.Context, _ struct{}) ([]model.Product, error) {
	rows, err := s.products.Products(ctx)
	if err != nil {
		return nil, unavailable("list products", err)
	}

	products := make([]model.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, *p)
	}
	return products, nil
}

func (s *TrackerService) loadGoals(ctx context.Context, _ struct{}) (model.GoalSet, error) {
	goals, err := s.goals.Goals(ctx)
	if errors.Is(err, repository.ErrGoalsNotSet) {
		return s.defaultGoals, nil
	}
	if err != nil {
		return model.GoalSet{}, unavailable("get goals", err)
	}
	return *goals, nil
}

// ListProducts returns every product ordered by name.
func (s *TrackerService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productCache.Get(ctx, struct{}{})
	if err != nil {
		return nil, err
	}
	return slices.Clone(products), nil
}

// ProductByName resolves a product case-insensitively, bypassing the cache.
func (s *TrackerService) ProductByName(ctx context.Context, name string) (*model.Product, error) {
	product, err := s.products.ByName(ctx, name)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable("find product", err)
	}
	return product, nil
}

// PreviewPortion returns the nutrients of quantity units of a product
// without logging anything.
func (s *TrackerService) PreviewPortion(ctx context.Context, productID string, quantity float64) (nutrition.Totals, error) {
	err := validation.ValidateQuantity(quantity, s.maxQuantity)
	if err != nil {
		return nutrition.Totals{}, invalid("quantity", err)
	}

	products, err := s.productCache.Get(ctx, struct{}{})
	if err != nil {
		return nutrition.Totals{}, err
	}

	i := slices.IndexFunc(products, func(p model.Product) bool { return p.ID == productID })
	if i < 0 {
		return nutrition.Totals{}, ErrNotFound
	}

	return nutrition.ForQuantity(nutrition.PerHundred(products[i]), quantity), nil
}

// ListLogsForDate always reads from the store; logs change within a session.
func (s *TrackerService) ListLogsForDate(ctx context.Context, date time.Time) ([]model.LogItem, error) {
	items, err := s.logs.ItemsForDate(ctx, date.Format(model.DateLayout))
	if err != nil {
		return nil, unavailable("list logs", err)
	}
	return items, nil
}

// InsertLog records quantity units of a product on date and returns the new entry id.
func (s *TrackerService) InsertLog(ctx context.Context, productID string, quantity float64, date time.Time) (string, error) {
	err := validation.ValidateQuantity(quantity, s.maxQuantity)
	if err != nil {
		return "", invalid("quantity", err)
	}

	_, err = s.products.ByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return "", ErrReference
	}
	if err != nil {
		return "", unavailable("insert log", err)
	}

	entry := &model.LogEntry{
		ProductID: productID,
		Quantity:  quantity,
		LogDate:   date.Format(model.DateLayout),
	}

	err = s.logs.Create(ctx, entry)
	if err != nil {
		return "", unavailable("insert log", err)
	}

	slog.Debug("food logged", "log_id", entry.ID, "product_id", productID, "quantity", quantity, "date", entry.LogDate)
	return entry.ID, nil
}

// DeleteLog removes one entry. Unknown ids return ErrNotFound, which callers
// treat as a no-op.
func (s *TrackerService) DeleteLog(ctx context.Context, logID string) error {
	err := s.logs.Delete(ctx, logID)
	if errors.Is(err, repository.ErrLogNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return unavailable("delete log", err)
	}
	return nil
}

// GetGoals returns the saved goals, or the defaults when none were saved.
func (s *TrackerService) GetGoals(ctx context.Context) (model.GoalSet, error) {
	return s.goalCache.Get(ctx, struct{}{})
}

// UpdateGoals replaces the goal set. The cached goals are purged before it
// returns, so the next GetGoals reflects the new values.
func (s *TrackerService) UpdateGoals(ctx context.Context, goals model.GoalSet) (model.GoalSet, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"daily_calories", goals.Calories},
		{"daily_protein", goals.Protein},
		{"daily_carbs", goals.Carbs},
		{"daily_fat", goals.Fat},
	}
	for _, f := range fields {
		err := validation.ValidateGoal(f.value)
		if err != nil {
			return model.GoalSet{}, invalid(f.name, err)
		}
	}

	goals.IsDefault = false
	err := s.goals.Upsert(ctx, &goals)
	if err != nil {
		return model.GoalSet{}, unavailable("update goals", err)
	}
	s.goalCache.Invalidate(struct{}{})

	return goals, nil
}

// DeleteProduct removes a product together with its log entries.
func (s *TrackerService) DeleteProduct(ctx context.Context, productID string) error {
	err := s.products.Delete(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return unavailable("delete product", err)
	}
	s.productCache.Invalidate(struct{}{})
	return nil
}

// SeedProducts upserts products by name and returns how many were written.
func (s *TrackerService) SeedProducts(ctx context.Context, products []model.Product) (int, error) {
	for _, p := range products {
		err := validation.ValidateProductName(p.Name)
		if err != nil {
			return 0, invalid("name", err)
		}
		if p.Calories < 0 || p.Protein < 0 || p.Carbs < 0 || p.Fat < 0 {
			return 0, invalid("products", fmt.Errorf("%s: nutrient values cannot be negative", p.Name))
		}
	}

	written := 0
	defer s.productCache.Invalidate(struct{}{})
	for i := range products {
		err := s.products.Upsert(ctx, &products[i])
		if err != nil {
			return written, unavailable("seed products", err)
		}
		written++
	}

	return written, nil
}

// RefreshCache purges the product and goal caches.
func (s *TrackerService) RefreshCache() {
	s.productCache.Purge()
	s.goalCache.Purge()
	slog.Info("cache cleared")
}

func (s *TrackerService) CacheStats() []cache.Stats {
	return []cache.Stats{s.productCache.Stats(), s.goalCache.Stats()}
}
