package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, kittiesSvc *kitties.Service) {
	r.Get("/kitties/{kittyID}/events", listKittyEventsHandler(svc, kittiesSvc))
	r.Get("/me/events", listMyEventsHandler(svc))
	r.Get("/events/{eventID}", getEventHandler(svc))
}

// eventResponse representa una mutación confirmada devuelta por la API.
type eventResponse struct {
	ID         string            `json:"id"`
	KittyID    kitties.KittyID   `json:"kitty_id"`
	Type       kitties.EventType `json:"type"`
	Account    string            `json:"account"`
	From       string            `json:"from,omitempty"`
	To         string            `json:"to,omitempty"`
	Parents    []kitties.KittyID `json:"parents,omitempty"`
	RecordedAt time.Time         `json:"recorded_at"`
}

// listKittyEventsHandler godoc
// @Summary Historial de un kitty
// @Description Lista las mutaciones confirmadas de un kitty, más recientes primero. Autenticación: `X-Debug-Account-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param kittyID path int true "ID del kitty"
// @Param limit query int false "Máximo de eventos (1-200). Por defecto 50"
// @Param types query string false "CSV de tipos (KITTY_CREATED,KITTY_TRANSFERRED,KITTY_BRED)"
// @Param from query string false "recorded_at mínimo (RFC3339)"
// @Param to query string false "recorded_at máximo (RFC3339)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "kitty not found"
// @Router /kitties/{kittyID}/events [get]
func listKittyEventsHandler(svc *Service, kittiesSvc *kitties.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.AccountFrom(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := kitties.ParseID(chi.URLParam(r, "kittyID"))
		if err != nil {
			http.Error(w, "kitty not found", http.StatusNotFound)
			return
		}
		if _, err := kittiesSvc.GetByID(r.Context(), id); err != nil {
			http.Error(w, "kitty not found", http.StatusNotFound)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByKitty(r.Context(), id, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponses(items))
	}
}

// listMyEventsHandler godoc
// @Summary Mis mutaciones
// @Description Lista las transiciones ejecutadas por la cuenta autenticada o que la tienen como destino.
// @Tags events
// @Produce json
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/events [get]
func listMyEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.AccountFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByAccount(r.Context(), account, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponses(items))
	}
}

// getEventHandler godoc
// @Summary Detalle de un evento
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.AccountFrom(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponses([]KittyEvent{e})[0])
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=KITTY_CREATED,KITTY_BRED
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]kitties.EventType, 0, len(parts))
		for _, p := range parts {
			t := kitties.EventType(strings.ToUpper(strings.TrimSpace(p)))
			if t == "" {
				continue
			}
			out = append(out, t)
		}
		if len(out) > 0 {
			filter.Types = out
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	return filter, nil
}

func toEventResponses(items []KittyEvent) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		resp := eventResponse{
			ID:         e.ID,
			KittyID:    e.KittyID,
			Type:       e.Type,
			Account:    e.Account,
			From:       e.From,
			To:         e.To,
			RecordedAt: e.RecordedAt,
		}
		if e.Parents != nil {
			resp.Parents = []kitties.KittyID{e.Parents.Parent1, e.Parents.Parent2}
		}
		out = append(out, resp)
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
