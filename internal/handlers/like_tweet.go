package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/services"
)

// NewLikeTweetHandler returns an HTTP handler adding one like to a tweet.
// @Summary Like a tweet
// @Description Any authenticated user can like any tweet, any number of times.
// @Tags tweets
// @Produce json
// @Param id path int true "Tweet ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /tweets/{id}/like [post]
// @Security BearerAuth
func NewLikeTweetHandler(svc PostLiker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := postID(w, r)
		if !ok {
			return
		}

		post, err := svc.Like(r.Context(), identity, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeError(w, http.StatusNotFound, "Tweet not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}
