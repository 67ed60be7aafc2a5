package handler

import (
	"errors"
	"net/http"

	"resties/internal/geo"
	"resties/internal/gmaps"
	"resties/internal/place"
)

// writeErr maps core errors onto status codes so the client can tell the
// cases apart: bad input, unresolvable zip, missing vs. someone else's
// resource, duplicate add, and a failing provider.
func writeErr(w http.ResponseWriter, err error) {
	var apiErr *gmaps.APIError

	switch {
	case errors.Is(err, place.ErrInvalidInput), errors.Is(err, geo.ErrInvalidZip):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, geo.ErrUnknownZip):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, geo.ErrAmbiguousZip):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, place.ErrDuplicate):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, place.ErrNotOwned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, place.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &apiErr):
		http.Error(w, "place provider unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
