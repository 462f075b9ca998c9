package handler

import (
	"net/http"

	"github.com/fitstack/macrotracker/internal/model"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/ui"
)

type GoalHandler struct {
	tracker *service.TrackerService
}

func NewGoalHandler(tracker *service.TrackerService) *GoalHandler {
	return &GoalHandler{
		tracker: tracker,
	}
}

type updateGoalsRequest struct {
	Calories float64 `json:"daily_calories"`
	Protein  float64 `json:"daily_protein"`
	Carbs    float64 `json:"daily_carbs"`
	Fat      float64 `json:"daily_fat"`
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goals, err := h.tracker.GetGoals(r.Context())
	if err != nil {
		renderServiceError(w, r, "get goals", err)
		return
	}

	ui.Render(w, r, http.StatusOK, goals)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateGoalsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goals, err := h.tracker.UpdateGoals(r.Context(), model.GoalSet{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		renderServiceError(w, r, "update goals", err)
		return
	}

	ui.Render(w, r, http.StatusOK, goals)
}
