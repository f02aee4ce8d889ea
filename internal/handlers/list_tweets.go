package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
)

// NewListTweetsHandler returns all tweets, newest first.
// @Summary List tweets
// @Tags tweets
// @Produce json
// @Success 200 {array} models.Post
// @Failure 500 {object} handlers.ErrorResponse
// @Router /tweets/ [get]
func NewListTweetsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}
