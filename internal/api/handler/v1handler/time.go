package v1handler

import (
	"encoding/json"
	"net/http"
	"time"

	"timeservice/pkg/serrors"
)

// ConvertTimeRequest is the body of POST /v1/time/convert.
type ConvertTimeRequest struct {
	// SourceTimezone is the IANA zone the clock reading is taken in.
	SourceTimezone string `json:"source_timezone" validate:"required"`
	// Time is the 24-hour wall-clock reading, "HH:MM".
	Time string `json:"time" validate:"required"`
	// TargetTimezone is the IANA zone to convert into.
	TargetTimezone string `json:"target_timezone" validate:"required"`
}

// CurrentTime handles GET /v1/time/current?timezone=...
func (h *Handler) CurrentTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	snap, err := h.deps.Time.CurrentTime(ctx, r.URL.Query().Get("timezone"))
	h.deps.Metrics.Observe(ctx, "current_time", start, err)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, snap)
}

// ConvertTime handles POST /v1/time/convert.
func (h *Handler) ConvertTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req ConvertTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "missing required fields"))

		return
	}

	conv, err := h.deps.Time.ConvertTime(ctx, req.SourceTimezone, req.Time, req.TargetTimezone)
	h.deps.Metrics.Observe(ctx, "convert_time", start, err)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, conv)
}
