package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/services"
)

// NewDeleteTweetHandler returns an HTTP handler deleting the caller's tweet.
// @Summary Delete a tweet
// @Tags tweets
// @Param id path int true "Tweet ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "You can only delete your own tweets"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /tweets/{id} [delete]
// @Security BearerAuth
func NewDeleteTweetHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := postID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), identity, id); err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeError(w, http.StatusNotFound, "Tweet not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You can only delete your own tweets")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
