package handlers

import "net/http"

// NewRootHandler returns the API info handler.
// @Summary API info
// @Tags info
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "Welcome to the Twitter Clone API! Visit /swagger/index.html for API documentation.",
		})
	}
}
