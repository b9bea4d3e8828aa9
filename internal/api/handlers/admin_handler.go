package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Abubakar-88/jugjiggasha/internal/auth"
	"github.com/Abubakar-88/jugjiggasha/internal/services"
)

// AdminHandler handles admin authentication and the event log.
type AdminHandler struct {
	admins services.AdminServiceProvider
	events services.EventServiceProvider
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admins services.AdminServiceProvider, events services.EventServiceProvider) *AdminHandler {
	return &AdminHandler{admins: admins, events: events}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles admin authentication and JWT generation.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	admin, err := h.admins.Authenticate(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(admin)
	if err != nil {
		log.Error().Err(err).Str("admin_id", admin.ID).Msg("Failed to generate JWT")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	// Set Secure flag based on environment.
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}

// Logout clears the auth cookie.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	w.WriteHeader(http.StatusNoContent)
}

// GetMe retrieves the currently authenticated admin from the token.
func (h *AdminHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.AdminClaimsKey).(*auth.Claims)
	if !ok {
		log.Error().Msg("Could not retrieve admin claims from context")
		http.Error(w, "Could not retrieve admin from token", http.StatusInternalServerError)
		return
	}

	admin, err := h.admins.GetAdminByID(claims.AdminID)
	if err != nil {
		log.Error().Err(err).Str("admin_id", claims.AdminID).Msg("Admin from token not found in DB")
		http.Error(w, "Admin not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(admin)
}

// Events retrieves the most recent events.
func (h *AdminHandler) Events(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", 50)
	events, err := h.events.GetRecentEvents(limit)
	if err != nil {
		http.Error(w, "Failed to retrieve events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
