package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/models"
	"github.com/sbilibin2017/gw-tweets/internal/services"
)

// CreateTweetRequest represents the JSON body for a new tweet
// swagger:model CreateTweetRequest
type CreateTweetRequest struct {
	models.PostContent
}

// NewCreateTweetHandler returns an HTTP handler creating a tweet for the caller.
// @Summary Create a tweet
// @Description The username in the body must match the authenticated user.
// @Tags tweets
// @Accept json
// @Produce json
// @Param request body handlers.CreateTweetRequest true "Tweet"
// @Success 201 {object} models.Post
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} handlers.ErrorResponse "You can only create tweets for yourself"
// @Router /tweets/ [post]
// @Security BearerAuth
func NewCreateTweetHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CreateTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		post, err := svc.Create(r.Context(), identity, req.Username, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You can only create tweets for yourself")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}
