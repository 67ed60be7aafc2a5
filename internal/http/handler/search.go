package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"resties/internal/auth"
	"resties/internal/place"
)

type SearchHandler struct {
	Svc *place.Service
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	in := place.SearchInput{
		Term: strings.TrimSpace(r.URL.Query().Get("q")),
		Zip:  strings.TrimSpace(r.URL.Query().Get("zip")),
	}

	if v := strings.TrimSpace(r.URL.Query().Get("radius")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid radius", http.StatusBadRequest)
			return
		}
		in.RadiusMeters = n
	}
	if v := strings.TrimSpace(r.URL.Query().Get("radius_mi")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			http.Error(w, "invalid radius_mi", http.StatusBadRequest)
			return
		}
		in.RadiusMiles = f
	}

	results, err := h.Svc.NearbySearch(r.Context(), uid, in)
	if err != nil {
		writeErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}
