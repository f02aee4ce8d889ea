package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/middlewares"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Tweet not found
	Error string `json:"error"`
}

// MessageResponse carries an informational message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// example: Account alice created successfully.
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// currentUser returns the username placed in the context by the auth
// middleware, answering 401 itself when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := middlewares.GetUsernameFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return "", false
	}
	return username, true
}

// postID parses the {id} path parameter, answering 400 itself when invalid.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tweet id")
		return 0, false
	}
	return id, true
}
