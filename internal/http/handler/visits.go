package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"resties/internal/auth"
	"resties/internal/place"

	"github.com/go-chi/chi/v5"
)

const visitDateLayout = "2006-01-02"

type VisitsHandler struct {
	Svc *place.Service
}

type visitDTO struct {
	ID        uint64 `json:"id"`
	PlaceID   string `json:"place_id"`
	VisitDate string `json:"visit_date"`
	Comments  string `json:"comments"`
}

func toVisitDTO(v place.Visit) visitDTO {
	return visitDTO{
		ID:        v.ID,
		PlaceID:   v.PlaceID,
		VisitDate: v.VisitDate.Format(visitDateLayout),
		Comments:  v.Comments,
	}
}

type visitReq struct {
	VisitDate string `json:"visit_date"`
	Comments  string `json:"comments"`
}

func (h *VisitsHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	placeID := chi.URLParam(r, "placeID")

	visits, err := h.Svc.PlaceVisits(r.Context(), uid, placeID)
	if err != nil {
		writeErr(w, err)
		return
	}

	out := make([]visitDTO, 0, len(visits))
	for _, v := range visits {
		out = append(out, toVisitDTO(v))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *VisitsHandler) Record(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	placeID := chi.URLParam(r, "placeID")

	var req visitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	date, err := time.Parse(visitDateLayout, strings.TrimSpace(req.VisitDate))
	if err != nil {
		http.Error(w, "invalid visit_date (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	v, err := h.Svc.RecordVisit(r.Context(), uid, placeID, date, req.Comments)
	if err != nil {
		writeErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toVisitDTO(*v))
}

func (h *VisitsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	idStr := chi.URLParam(r, "visitID")
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req visitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	date, err := time.Parse(visitDateLayout, strings.TrimSpace(req.VisitDate))
	if err != nil {
		http.Error(w, "invalid visit_date (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	v, err := h.Svc.EditVisit(r.Context(), id64, uid, date, req.Comments)
	if err != nil {
		writeErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toVisitDTO(*v))
}
