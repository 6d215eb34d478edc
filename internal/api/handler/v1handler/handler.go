// Package v1handler implements the v1 HTTP endpoints for the time service
// and the translation of semantic errors into structured JSON responses.
package v1handler

import (
	"context"
	"encoding/json"
	"net/http"

	"timeservice/internal/timeops"
	"timeservice/internal/timezone"
	"timeservice/pkg/logger"
	"timeservice/pkg/metrics"
	"timeservice/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps bundles the collaborators the v1 handlers need.
type Deps struct {
	// Time performs the two time operations.
	Time timeops.Service
	// Metrics records per-operation instruments. May be nil in tests.
	Metrics *metrics.Operations
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps     Deps
	validate *validator.Validate
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		deps:     deps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes mounts the v1 endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/time/current", h.CurrentTime)
	r.Post("/time/convert", h.ConvertTime)
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorBody is the wire shape of every failure response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	// Code is the stable machine-readable error kind.
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// statusByKind maps semantic error kinds to HTTP status codes. Kinds not
// listed here are treated as internal and hidden from callers.
var statusByKind = map[serrors.Kind]int{ //nolint: gochecknoglobals
	timezone.ErrInvalidTimezone:  http.StatusBadRequest,
	timeops.ErrInvalidTimeFormat: http.StatusBadRequest,
	serrors.ErrBadRequest:        http.StatusBadRequest,
	serrors.ErrUnauthorized:      http.StatusUnauthorized,
	serrors.ErrNotFound:          http.StatusNotFound,
}

// writeJSON marshals payload and writes it with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "could not marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// writeError renders err as a structured error response. Errors without a
// mapped kind are logged and reported as a generic internal failure.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)
	message := err.Error()

	status, ok := statusByKind[kind]
	if !ok {
		logger.Error(ctx, "unhandled error", zap.Error(err))
		status = http.StatusInternalServerError
		kind = serrors.ErrInternal
		message = "internal error"
	}

	writeJSON(ctx, w, status, errorBody{Error: errorDetail{
		Code:    kind.Error(),
		Message: message,
	}})
}
