package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/handlers/v1alpha1/mappers"
	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/4kternos/fitting-room/pkg/log"
	"github.com/4kternos/fitting-room/pkg/metrics"
	"github.com/4kternos/fitting-room/pkg/middleware"
	"github.com/go-chi/render"
)

// (POST /api/v1/sessions)
func (h *ServiceHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("session_handler").
		WithContext(r.Context()).
		Operation("create_session").
		Build()

	var m *sizing.Measurements

	var form v1alpha1.Measurements
	err := decodeBody(r, &form)
	switch {
	case errors.Is(err, errEmptyBody):
		logger.Step("use_defaults").Log()
	case err != nil:
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err))
		return
	default:
		if err := h.validator.Struct(form); err != nil {
			logger.Error(err).Log()
			renderError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		measurements := mappers.MeasurementsFormApi(form)
		m = &measurements
	}

	fitting, err := h.fittingSrv.CreateSession(r.Context(), m)
	if err != nil {
		logger.Error(err).Log()
		renderServiceError(w, r, err)
		return
	}

	metrics.UniqueVisitsPerWeek.IncreaseTotalUniqueVisit(middleware.ClientIP(r))

	logger.Success().WithUUID("session_id", fitting.Session.ID).Log()
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.SessionToApi(fitting))
}

// (GET /api/v1/sessions/{id})
func (h *ServiceHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("session_handler").
		WithContext(r.Context()).
		Operation("get_session").
		Build()

	id, err := sessionID(r)
	if err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid session id: %s", err))
		return
	}

	fitting, err := h.fittingSrv.GetSession(r.Context(), id)
	if err != nil {
		logger.Error(err).WithUUID("session_id", id).Log()
		renderServiceError(w, r, err)
		return
	}

	logger.Success().WithUUID("session_id", id).Log()
	render.JSON(w, r, mappers.SessionToApi(fitting))
}

// (PATCH /api/v1/sessions/{id})
func (h *ServiceHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("session_handler").
		WithContext(r.Context()).
		Operation("update_session").
		Build()

	id, err := sessionID(r)
	if err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid session id: %s", err))
		return
	}

	var form v1alpha1.MeasurementsUpdate
	if err := decodeBody(r, &form); err != nil {
		logger.Error(err).WithUUID("session_id", id).Log()
		if errors.Is(err, errEmptyBody) {
			renderError(w, r, http.StatusBadRequest, "empty body")
			return
		}
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err))
		return
	}

	if err := h.validator.Struct(form); err != nil {
		logger.Error(err).WithUUID("session_id", id).Log()
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	fitting, err := h.fittingSrv.UpdateSession(r.Context(), id, mappers.MeasurementsUpdateFormApi(form))
	if err != nil {
		logger.Error(err).WithUUID("session_id", id).Log()
		renderServiceError(w, r, err)
		return
	}

	logger.Success().WithUUID("session_id", id).WithInt("jacket", fitting.Recommendation.Jacket).Log()
	render.JSON(w, r, mappers.SessionToApi(fitting))
}

// (DELETE /api/v1/sessions/{id})
func (h *ServiceHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("session_handler").
		WithContext(r.Context()).
		Operation("delete_session").
		Build()

	id, err := sessionID(r)
	if err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid session id: %s", err))
		return
	}

	fitting, err := h.fittingSrv.DeleteSession(r.Context(), id)
	if err != nil {
		logger.Error(err).WithUUID("session_id", id).Log()
		renderServiceError(w, r, err)
		return
	}

	logger.Success().WithUUID("session_id", id).Log()
	render.JSON(w, r, mappers.SessionToApi(fitting))
}
