package routes

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/config"
	"github.com/fitstack/macrotracker/internal/db/dbtest"
	"github.com/fitstack/macrotracker/internal/model"
	"github.com/fitstack/macrotracker/internal/ui"
)

type testServer struct {
	app       *app.App
	handler   http.Handler
	productID string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		AppName:         "macros-test",
		AppEnv:          "development",
		TimeZone:        "UTC",
		DBDriver:        "sqlite",
		ProductCacheTTL: 5 * time.Minute,
		GoalCacheTTL:    time.Minute,
		MaxLogQuantity:  10000,
		DefaultCalories: 2500,
		DefaultProtein:  150,
		DefaultCarbs:    250,
		DefaultFat:      80,
	}
	database := dbtest.Open(t)
	a := &app.App{Cfg: cfg, DB: database, Tracker: app.NewTracker(cfg, database)}

	_, err := a.Tracker.SeedProducts(context.Background(), []model.Product{
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	})
	if err != nil {
		t.Fatalf("seed products: %v", err)
	}
	products, err := a.Tracker.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}

	return &testServer{app: a, handler: SetupRoutes(a), productID: products[0].ID}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(recorder.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, recorder.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	if recorder.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, recorder.Code, recorder.Body.String())
	}
}

func expectFieldError(t *testing.T, recorder *httptest.ResponseRecorder, field string) {
	t.Helper()
	expectStatus(t, recorder, http.StatusUnprocessableEntity)

	body := decode[ui.ErrorBody](t, recorder)
	if body.Field != field {
		t.Fatalf("expected error on field %q, got %+v", field, body)
	}
}

func todayUTC() string {
	return time.Now().UTC().Format(model.DateLayout)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodGet, "/healthz", "")
	expectStatus(t, response, http.StatusOK)
}

func TestLogFoodAndReadSummary(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodPost, "/api/logs", `{"product_id":"`+s.productID+`","quantity":150}`)
	expectStatus(t, response, http.StatusCreated)
	created := decode[struct {
		ID string `json:"id"`
	}](t, response)
	if created.ID == "" {
		t.Fatal("expected an id for the new entry")
	}

	response = s.do(t, http.MethodGet, "/api/logs", "")
	expectStatus(t, response, http.StatusOK)
	items := decode[[]model.LogItem](t, response)
	if len(items) != 1 || items[0].ID != created.ID || items[0].LogDate != todayUTC() {
		t.Fatalf("unexpected logs: %+v", items)
	}

	response = s.do(t, http.MethodGet, "/api/summary?date="+todayUTC(), "")
	expectStatus(t, response, http.StatusOK)
	summary := decode[struct {
		Totals struct {
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
		} `json:"totals"`
		Goals model.GoalSet `json:"goals"`
	}](t, response)
	if math.Abs(summary.Totals.Calories-247.5) > 1e-9 || math.Abs(summary.Totals.Protein-46.5) > 1e-9 {
		t.Fatalf("unexpected totals: %+v", summary.Totals)
	}
	if !summary.Goals.IsDefault || summary.Goals.Calories != 2500 {
		t.Fatalf("expected default goals, got %+v", summary.Goals)
	}
}

func TestCreateLogValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero quantity", `{"product_id":"` + s.productID + `","quantity":0}`, "quantity"},
		{"negative quantity", `{"product_id":"` + s.productID + `","quantity":-5}`, "quantity"},
		{"quantity at ceiling", `{"product_id":"` + s.productID + `","quantity":10000}`, "quantity"},
		{"unknown product", `{"product_id":"missing","quantity":100}`, "product_id"},
		{"missing product", `{"quantity":100}`, "product_id"},
		{"future date", `{"product_id":"` + s.productID + `","quantity":100,"date":"2999-01-01"}`, "date"},
		{"malformed date", `{"product_id":"` + s.productID + `","quantity":100,"date":"01/02/2024"}`, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectFieldError(t, s.do(t, http.MethodPost, "/api/logs", tt.body), tt.field)
		})
	}

	response := s.do(t, http.MethodGet, "/api/logs", "")
	if items := decode[[]model.LogItem](t, response); len(items) != 0 {
		t.Fatalf("rejected entries were stored: %+v", items)
	}
}

func TestCreateLogRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodPost, "/api/logs", `{"product_id":`)
	expectStatus(t, response, http.StatusBadRequest)
}

func TestSelectedDateValidation(t *testing.T) {
	s := newTestServer(t)

	expectFieldError(t, s.do(t, http.MethodGet, "/api/logs?date=2999-01-01", ""), "date")
	expectFieldError(t, s.do(t, http.MethodGet, "/api/summary?date=yesterday", ""), "date")

	response := s.do(t, http.MethodGet, "/api/logs?date=2024-01-01", "")
	expectStatus(t, response, http.StatusOK)
	if items := decode[[]model.LogItem](t, response); items == nil || len(items) != 0 {
		t.Fatalf("expected an empty list, got %+v", items)
	}
}

func TestDeleteLog(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodPost, "/api/logs", `{"product_id":"`+s.productID+`","quantity":100}`)
	expectStatus(t, response, http.StatusCreated)
	created := decode[struct {
		ID string `json:"id"`
	}](t, response)

	expectStatus(t, s.do(t, http.MethodDelete, "/api/logs/"+created.ID, ""), http.StatusNoContent)
	expectStatus(t, s.do(t, http.MethodDelete, "/api/logs/"+created.ID, ""), http.StatusNoContent)

	response = s.do(t, http.MethodGet, "/api/logs", "")
	if items := decode[[]model.LogItem](t, response); len(items) != 0 {
		t.Fatalf("expected no entries after delete, got %+v", items)
	}
}

func TestGoals(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodPut, "/api/goals", `{"daily_calories":2200,"daily_protein":160,"daily_carbs":200,"daily_fat":70}`)
	expectStatus(t, response, http.StatusOK)

	response = s.do(t, http.MethodGet, "/api/goals", "")
	expectStatus(t, response, http.StatusOK)
	goals := decode[model.GoalSet](t, response)
	if goals.Calories != 2200 || goals.Protein != 160 || goals.IsDefault {
		t.Fatalf("goals not updated: %+v", goals)
	}

	expectFieldError(t, s.do(t, http.MethodPut, "/api/goals", `{"daily_calories":2200,"daily_protein":-1,"daily_carbs":200,"daily_fat":70}`), "daily_protein")
}

func TestWeeklyTrend(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodGet, "/api/trend?date=2024-03-05", "")
	expectStatus(t, response, http.StatusOK)
	trend := decode[struct {
		Start string `json:"start"`
		End   string `json:"end"`
		Days  []struct {
			Date string `json:"date"`
		} `json:"days"`
	}](t, response)

	if trend.Start != "2024-02-28" || trend.End != "2024-03-05" || len(trend.Days) != 7 {
		t.Fatalf("unexpected window: %+v", trend)
	}
}

func TestPreviewPortion(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodGet, "/api/products/"+s.productID+"/preview?quantity=50", "")
	expectStatus(t, response, http.StatusOK)
	totals := decode[struct {
		Calories float64 `json:"calories"`
	}](t, response)
	if math.Abs(totals.Calories-82.5) > 1e-9 {
		t.Fatalf("expected 82.5 kcal, got %v", totals.Calories)
	}

	expectFieldError(t, s.do(t, http.MethodGet, "/api/products/"+s.productID+"/preview?quantity=abc", ""), "quantity")
	expectStatus(t, s.do(t, http.MethodGet, "/api/products/missing/preview?quantity=50", ""), http.StatusNotFound)
}

func TestDeleteProductRefreshesList(t *testing.T) {
	s := newTestServer(t)

	response := s.do(t, http.MethodGet, "/api/products", "")
	if products := decode[[]model.Product](t, response); len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	expectStatus(t, s.do(t, http.MethodDelete, "/api/products/"+s.productID, ""), http.StatusNoContent)
	expectStatus(t, s.do(t, http.MethodDelete, "/api/products/"+s.productID, ""), http.StatusNotFound)

	response = s.do(t, http.MethodGet, "/api/products", "")
	if products := decode[[]model.Product](t, response); len(products) != 0 {
		t.Fatalf("expected deleted product to be gone, got %+v", products)
	}
}

func TestCacheEndpoints(t *testing.T) {
	s := newTestServer(t)

	expectStatus(t, s.do(t, http.MethodPost, "/api/cache/refresh", ""), http.StatusNoContent)

	response := s.do(t, http.MethodGet, "/api/cache", "")
	expectStatus(t, response, http.StatusOK)
	status := decode[struct {
		Strategy string `json:"strategy"`
		Caches   []struct {
			Name    string `json:"name"`
			Entries int    `json:"entries"`
		} `json:"caches"`
	}](t, response)
	if status.Strategy != "cache-aside" || len(status.Caches) != 2 {
		t.Fatalf("unexpected cache status: %+v", status)
	}
	for _, c := range status.Caches {
		if c.Entries != 0 {
			t.Fatalf("expected %s cache to be empty after refresh, got %d", c.Name, c.Entries)
		}
	}
}

func TestUnavailableStore(t *testing.T) {
	s := newTestServer(t)
	if err := s.app.DB.Close(); err != nil {
		t.Fatalf("close database: %v", err)
	}

	response := s.do(t, http.MethodGet, "/api/logs", "")
	expectStatus(t, response, http.StatusServiceUnavailable)
	if body := decode[ui.ErrorBody](t, response); !body.Retryable {
		t.Fatalf("expected a retryable error, got %+v", body)
	}

	expectStatus(t, s.do(t, http.MethodGet, "/healthz", ""), http.StatusServiceUnavailable)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	expectStatus(t, s.do(t, http.MethodGet, "/api/nope", ""), http.StatusNotFound)
}
