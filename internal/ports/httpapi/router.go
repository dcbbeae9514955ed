// Package httpapi exposes the decision service over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"landlord/internal/app"
	"landlord/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/heroiclabs/nakama-common/runtime"
)

const maxBodyBytes = 1 << 20

// Router builds the HTTP handler around svc.
func Router(svc *app.Service, logger runtime.Logger) http.Handler {
	h := &handler{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/decide", h.decide)
		r.Post("/evaluate", h.evaluate)
	})
	return r
}

type handler struct {
	svc    *app.Service
	logger runtime.Logger
}

// DecideResponse wraps the judge output with the decision details.
type DecideResponse struct {
	app.Output
	DecisionID string  `json:"decision_id"`
	Stage      string  `json:"stage"`
	Score      float64 `json:"score"`
	Type       string  `json:"type,omitempty"`
	Status     *int    `json:"status,omitempty"`
}

func (h *handler) decide(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := app.ParseInput(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	logger := h.logger.WithField("request_id", middleware.GetReqID(r.Context()))
	d, err := h.svc.Decide(r.Context(), logger, in)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	resp := DecideResponse{Output: d.Output(), DecisionID: d.ID, Stage: d.Stage.String(), Score: d.Score}
	if d.Stage == app.StagePlaying {
		status := int(d.Status)
		resp.Type = d.Combo.Type.String()
		resp.Status = &status
	}
	writeJSON(w, http.StatusOK, resp)
}

// EvaluateRequest is the /v1/evaluate body. MaxBid defaults to no earlier bid.
type EvaluateRequest struct {
	Hand   []domain.Card `json:"hand"`
	MaxBid *int          `json:"max_bid,omitempty"`
}

// Component is one part of a hand decomposition.
type Component struct {
	Type  string        `json:"type"`
	Cards []domain.Card `json:"cards"`
	Text  string        `json:"text"`
}

// EvaluateResponse is the body of /v1/evaluate.
type EvaluateResponse struct {
	Score      float64     `json:"score"`
	Value      float64     `json:"value"`
	Moves      float64     `json:"moves"`
	Bid        int         `json:"bid"`
	Weak       int         `json:"weak"`
	Rocket     bool        `json:"rocket"`
	Bombs      int         `json:"bombs"`
	Components []Component `json:"components"`
}

func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	maxBid := -1
	if req.MaxBid != nil {
		maxBid = *req.MaxBid
	}

	ev, err := h.svc.Evaluate(req.Hand, maxBid)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}

	resp := EvaluateResponse{
		Score:      ev.Score,
		Value:      ev.Value,
		Moves:      ev.Moves,
		Bid:        ev.Bid,
		Weak:       ev.Profile.Weak,
		Rocket:     ev.Profile.Rocket,
		Bombs:      ev.Profile.Bombs,
		Components: make([]Component, 0, len(ev.Components)),
	}
	for _, c := range ev.Components {
		resp.Components = append(resp.Components, Component{Type: c.Type.String(), Cards: c.Cards, Text: domain.FormatCards(c.Cards)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, app.ErrEmptyRequests),
		errors.Is(err, app.ErrMalformedRequest),
		errors.Is(err, app.ErrUnknownLandlord),
		errors.Is(err, app.ErrEmptyHand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
