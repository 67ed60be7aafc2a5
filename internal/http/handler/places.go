package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"resties/internal/auth"
	"resties/internal/place"

	"github.com/go-chi/chi/v5"
)

type PlacesHandler struct {
	Svc *place.Service
}

type placeDTO struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Types    []string `json:"types"`
	Notes    *string  `json:"notes,omitempty"`
}

func (h *PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	entries, err := h.Svc.MyPlaces(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}

	out := make([]placeDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, placeDTO{
			PlaceID:  e.Place.ID,
			Name:     e.Place.Name,
			Vicinity: e.Place.Vicinity,
			Types:    []string(e.Place.Types),
			Notes:    e.Notes,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *PlacesHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	placeID := chi.URLParam(r, "placeID")

	p, err := h.Svc.AddPlace(r.Context(), uid, placeID)
	if err != nil {
		writeErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(placeDTO{
		PlaceID:  p.ID,
		Name:     p.Name,
		Vicinity: p.Vicinity,
		Types:    []string(p.Types),
	})
}

func (h *PlacesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	placeID := chi.URLParam(r, "placeID")

	if err := h.Svc.RemovePlace(r.Context(), uid, placeID); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type notesReq struct {
	Notes *string `json:"notes"`
}

func (h *PlacesHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	placeID := chi.URLParam(r, "placeID")

	var req notesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if trimmed == "" {
			req.Notes = nil
		} else {
			req.Notes = &trimmed
		}
	}

	if err := h.Svc.EditNotes(r.Context(), uid, placeID, req.Notes); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlacesHandler) Details(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeID")

	detail, err := h.Svc.Details(r.Context(), placeID)
	if err != nil {
		writeErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(detail)
}
