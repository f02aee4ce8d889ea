package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/services"
)

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Access token
	// example: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type, always bearer
	// example: bearer
	TokenType string `json:"token_type"`
}

// NewLoginHandler returns an HTTP handler for user login. Credentials arrive
// as form fields, like an OAuth2 password grant.
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.LoginResponse "Bearer token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" || password == "" {
			writeError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
