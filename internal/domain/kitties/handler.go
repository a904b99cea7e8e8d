package kitties

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kitty-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/kitties", func(kr chi.Router) {
		kr.Post("/", createKittyHandler(svc))
		kr.Post("/breed", breedKittyHandler(svc))

		// next-id va antes que {kittyID} para no chocar con el parámetro
		kr.Get("/next-id", nextKittyIDHandler(svc))
		kr.Get("/{kittyID}", getKittyHandler(svc))
		kr.Post("/{kittyID}/transfer", transferKittyHandler(svc))
	})

	r.Get("/accounts/{accountID}/kitties", listAccountKittiesHandler(svc))
	r.Get("/me/kitties", listMyKittiesHandler(svc))
}

type transferKittyRequest struct {
	To string `json:"to" validate:"required,max=128"`
}

type breedKittyRequest struct {
	// Punteros: 0 es un id válido, nil = no enviado.
	Parent1 *KittyID `json:"parent1" validate:"required"`
	Parent2 *KittyID `json:"parent2" validate:"required"`
}

type kittyResponse struct {
	ID      KittyID   `json:"id"`
	Genes   string    `json:"genes"`
	Sex     Sex       `json:"sex"`
	Owner   string    `json:"owner"`
	Parents []KittyID `json:"parents,omitempty"`
}

type createdResponse struct {
	ID KittyID `json:"id"`
}

type nextIDResponse struct {
	NextKittyID KittyID `json:"next_kitty_id"`
}

type ownedResponse struct {
	Account string    `json:"account"`
	Kitties []KittyID `json:"kitties"`
}

// createKittyHandler godoc
// @Summary Crear kitty
// @Description Acuña un kitty para la cuenta autenticada y reserva el stake de creación.
// @Tags kitties
// @Produce json
// @Success 201 {object} createdResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 402 {string} string "token not enough"
// @Failure 409 {string} string "exceed max kitty owned | kitties count overflow"
// @Router /kitties [post]
func createKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.AccountFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := svc.Create(r.Context(), account)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// transferKittyHandler godoc
// @Summary Transferir kitty
// @Description Mueve el kitty a otra cuenta. El stake pasa del origen al destino.
// @Tags kitties
// @Accept json
// @Param kittyID path int true "ID del kitty"
// @Param body body transferKittyRequest true "Destino"
// @Success 204
// @Failure 400 {string} string "invalid body"
// @Failure 401 {string} string "unauthorized"
// @Failure 402 {string} string "token not enough"
// @Failure 403 {string} string "not owner"
// @Failure 404 {string} string "invalid kitty id"
// @Failure 409 {string} string "exceed max kitty owned"
// @Router /kitties/{kittyID}/transfer [post]
func transferKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.AccountFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := ParseID(chi.URLParam(r, "kittyID"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req transferKittyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		req.To = strings.TrimSpace(req.To)
		if err := validate.Struct(req); err != nil {
			http.Error(w, "to is required", http.StatusBadRequest)
			return
		}

		if err := svc.Transfer(r.Context(), account, id, req.To); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// breedKittyHandler godoc
// @Summary Criar kitty
// @Description Cría un kitty a partir de dos padres de la cuenta autenticada.
// @Tags kitties
// @Accept json
// @Produce json
// @Param body body breedKittyRequest true "Padres"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "same kitty id | invalid body"
// @Failure 401 {string} string "unauthorized"
// @Failure 402 {string} string "token not enough"
// @Failure 403 {string} string "not owner"
// @Failure 404 {string} string "invalid kitty id"
// @Failure 409 {string} string "exceed max kitty owned | kitties count overflow"
// @Router /kitties/breed [post]
func breedKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.AccountFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req breedKittyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "parent1 and parent2 are required", http.StatusBadRequest)
			return
		}

		id, err := svc.Breed(r.Context(), account, *req.Parent1, *req.Parent2)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// nextKittyIDHandler godoc
// @Summary Próximo id
// @Tags kitties
// @Produce json
// @Success 200 {object} nextIDResponse
// @Router /kitties/next-id [get]
func nextKittyIDHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next, err := svc.NextKittyID(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, nextIDResponse{NextKittyID: next})
	}
}

// getKittyHandler godoc
// @Summary Detalle de kitty
// @Tags kitties
// @Produce json
// @Param kittyID path int true "ID del kitty"
// @Success 200 {object} kittyResponse
// @Failure 404 {string} string "kitty not found"
// @Router /kitties/{kittyID} [get]
func getKittyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(chi.URLParam(r, "kittyID"))
		if err != nil {
			http.Error(w, "kitty not found", http.StatusNotFound)
			return
		}

		k, owner, err := svc.Describe(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toKittyResponse(k, owner))
	}
}

// listAccountKittiesHandler godoc
// @Summary Kitties de una cuenta
// @Tags kitties
// @Produce json
// @Param accountID path string true "Cuenta"
// @Success 200 {object} ownedResponse
// @Router /accounts/{accountID}/kitties [get]
func listAccountKittiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOwned(w, r, svc, chi.URLParam(r, "accountID"))
	}
}

// listMyKittiesHandler godoc
// @Summary Mis kitties
// @Tags kitties
// @Produce json
// @Success 200 {object} ownedResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/kitties [get]
func listMyKittiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := middleware.AccountFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeOwned(w, r, svc, account)
	}
}

func writeOwned(w http.ResponseWriter, r *http.Request, svc *Service, account string) {
	ids, err := svc.ListByOwner(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ownedResponse{Account: strings.TrimSpace(account), Kitties: ids})
}

func toKittyResponse(k Kitty, owner string) kittyResponse {
	resp := kittyResponse{
		ID:    k.ID,
		Genes: k.Genes.String(),
		Sex:   k.Sex(),
		Owner: owner,
	}
	if k.Parents != nil {
		resp.Parents = []KittyID{k.Parents.Parent1, k.Parents.Parent2}
	}
	return resp
}

// StatusOf traduce un error del servicio a un código HTTP.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidKittyID), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrTokenNotEnough):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrExceedMaxKittyOwned), errors.Is(err, ErrKittiesCountOverflow):
		return http.StatusConflict
	case errors.Is(err, ErrSameKittyID), errors.Is(err, ErrSameSex), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
