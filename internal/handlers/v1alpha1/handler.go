package v1alpha1

import (
	"errors"
	"io"
	"net/http"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/handlers/validator"
	"github.com/4kternos/fitting-room/internal/service"
	"github.com/4kternos/fitting-room/pkg/requestid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	fittingSrv *service.FittingService
	validator  *validator.Validator
}

func NewServiceHandler(fittingService *service.FittingService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewMeasurementsValidationRules()...)

	return &ServiceHandler{
		fittingSrv: fittingService,
		validator:  v,
	}
}

// HandlerFromMux mounts the API routes on r.
func HandlerFromMux(h *ServiceHandler, r chi.Router) http.Handler {
	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", h.GetInfo)
		r.Get("/size-chart", h.GetSizeChart)
		r.Post("/recommendations", h.CreateRecommendation)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/{id}", h.GetSession)
			r.Patch("/{id}", h.UpdateSession)
			r.Delete("/{id}", h.DeleteSession)
		})
	})
	return r
}

var errEmptyBody = errors.New("empty body")

// decodeBody decodes the JSON body of r into v. An empty body yields errEmptyBody.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, v1alpha1.Error{Message: message, RequestId: requestid.FromRequest(r)})
}

// renderServiceError maps the typed service errors to their status code.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *service.ErrResourceNotFound
	switch {
	case errors.As(err, &notFound):
		renderError(w, r, http.StatusNotFound, err.Error())
	default:
		renderError(w, r, http.StatusInternalServerError, err.Error())
	}
}
