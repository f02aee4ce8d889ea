package handlers

import (
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-tweets/internal/logger"
	"github.com/sbilibin2017/gw-tweets/internal/models"
)

// HomeResponse wraps the home feed
// swagger:model HomeResponse
type HomeResponse struct {
	Posts []models.Post `json:"posts"`
}

// HomeQuery holds the home feed parameters. They are parsed and validated
// but do not change the result yet.
type HomeQuery struct {
	FilterType     string
	Amount         int
	TimePeriodDays int
}

func parseHomeQuery(r *http.Request) (HomeQuery, error) {
	q := HomeQuery{FilterType: "new", Amount: 10, TimePeriodDays: 30}
	values := r.URL.Query()

	if v := values.Get("filter_type"); v != "" {
		q.FilterType = v
	}
	if v := values.Get("amount"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, err
		}
		q.Amount = n
	}
	if v := values.Get("time_period_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, err
		}
		q.TimePeriodDays = n
	}
	return q, nil
}

// NewHomeHandler returns the home feed.
// @Summary Home feed
// @Description Returns all tweets newest first. The query parameters are accepted but not applied.
// @Tags tweets
// @Produce json
// @Param filter_type query string false "Feed filter" default(new)
// @Param amount query int false "Number of tweets" default(10)
// @Param time_period_days query int false "Time window in days" default(30)
// @Success 200 {object} handlers.HomeResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /home [get]
func NewHomeHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseHomeQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid query parameters")
			return
		}
		logger.Log.Debugw("home feed", "filter_type", q.FilterType, "amount", q.Amount, "time_period_days", q.TimePeriodDays)

		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, HomeResponse{Posts: posts})
	}
}
