package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"resties/internal/auth"
	"resties/internal/geo"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB  *gorm.DB
	JWT *auth.JWT
	Geo *geo.Cache
}

type registerReq struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ZipCode  string `json:"zip_code"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.ZipCode = strings.TrimSpace(req.ZipCode)
	if req.UserName == "" || req.Email == "" || len(req.Password) < 6 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !geo.ValidZip(req.ZipCode) {
		http.Error(w, "zip code must be exactly 5 digits", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	u := auth.User{UserName: req.UserName, Email: req.Email, PasswordHash: hash, Role: "user", ZipCode: req.ZipCode}
	if err := h.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "username or email already used", http.StatusConflict)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// Warm the geocode cache for the home zip. Best effort: a flaky provider
	// must not block registration, the cache fills on first search instead.
	if err := h.Geo.Prime(r.Context(), req.ZipCode); err != nil {
		log.Warn().Err(err).Str("zip", req.ZipCode).Msg("zip geocode prime failed")
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
	})
}

type loginReq struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	var u auth.User
	if err := h.DB.Where("user_name = ?", req.UserName).First(&u).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
	})
}
