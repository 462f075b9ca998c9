package handler

import (
	"net/http"
	"strconv"

	"github.com/fitstack/macrotracker/internal/service"
	"github.com/fitstack/macrotracker/internal/ui"
)

type ProductHandler struct {
	tracker *service.TrackerService
}

func NewProductHandler(tracker *service.TrackerService) *ProductHandler {
	return &ProductHandler{
		tracker: tracker,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.tracker.ListProducts(r.Context())
	if err != nil {
		renderServiceError(w, r, "list products", err)
		return
	}

	ui.Render(w, r, http.StatusOK, products)
}

// Preview shows the nutrients of a portion before it is logged.
func (h *ProductHandler) Preview(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	quantity, err := strconv.ParseFloat(r.URL.Query().Get("quantity"), 64)
	if err != nil {
		ui.RenderError(w, r, http.StatusUnprocessableEntity, ui.ErrorBody{Error: "quantity must be a number", Field: "quantity"})
		return
	}

	totals, err := h.tracker.PreviewPortion(r.Context(), productID, quantity)
	if err != nil {
		renderServiceError(w, r, "preview portion", err)
		return
	}

	ui.Render(w, r, http.StatusOK, totals)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	err := h.tracker.DeleteProduct(r.Context(), productID)
	if err != nil {
		renderServiceError(w, r, "delete product", err)
		return
	}

	ui.NoContent(w)
}
