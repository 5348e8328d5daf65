package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hmonterrosa/scoring-dashboard/services"
)

type ScoringHandler struct {
	scoringService services.ScoringService
}

func NewScoringHandler(ss services.ScoringService) *ScoringHandler {
	return &ScoringHandler{
		scoringService: ss,
	}
}

func (h *ScoringHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	var input services.RecordScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := h.scoringService.RecordScore(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"score": score}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoringHandler) GetRecentScores(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			badRequestResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	recent, err := h.scoringService.RecentScores(r.Context(), gameID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"scores": recent}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
