package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/handlers/v1alpha1/mappers"
	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/4kternos/fitting-room/pkg/log"
	"github.com/go-chi/render"
)

// (GET /api/v1/size-chart)
func (h *ServiceHandler) GetSizeChart(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, mappers.SizeChartToApi(sizing.SizeChart()))
}

// (POST /api/v1/recommendations)
func (h *ServiceHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("fitting_handler").
		WithContext(r.Context()).
		Operation("create_recommendation").
		Build()

	var form v1alpha1.Measurements
	if err := decodeBody(r, &form); err != nil {
		logger.Error(err).Log()
		if errors.Is(err, errEmptyBody) {
			renderError(w, r, http.StatusBadRequest, "empty body")
			return
		}
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err))
		return
	}

	if err := h.validator.Struct(form); err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rec := h.fittingSrv.Recommend(r.Context(), mappers.MeasurementsFormApi(form))

	logger.Success().WithInt("jacket", rec.Jacket).WithInt("trousers", rec.Trousers).Log()
	render.JSON(w, r, mappers.RecommendationToApi(rec))
}
