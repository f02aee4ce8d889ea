package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/services"
)

// EditTweetRequest represents the JSON body for editing a tweet
// swagger:model EditTweetRequest
type EditTweetRequest struct {
	// New content
	// required: true
	// example: edited text
	Content string `json:"content"`
}

// NewEditTweetHandler returns an HTTP handler replacing the content of the caller's tweet.
// @Summary Edit a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param id path int true "Tweet ID"
// @Param request body handlers.EditTweetRequest true "New content"
// @Success 200 {object} models.Post
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "You can only edit your own tweets"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /tweets/{id} [patch]
// @Security BearerAuth
func NewEditTweetHandler(svc PostEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := postID(w, r)
		if !ok {
			return
		}

		var req EditTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		post, err := svc.UpdateContent(r.Context(), identity, id, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeError(w, http.StatusNotFound, "Tweet not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You can only edit your own tweets")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}
