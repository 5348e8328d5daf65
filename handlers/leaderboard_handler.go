package handlers

import (
	"net/http"

	"github.com/hmonterrosa/scoring-dashboard/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: ls,
	}
}

// GetStandings serves the ranked table for the admin view, the public
// fullscreen board and the websocket clients' initial render. The optional
// "game" query parameter filters the ranking to a single game.
func (h *LeaderboardHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	gameFilter := r.URL.Query().Get("game")

	result, err := h.leaderboardService.Standings(r.Context(), gameFilter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"leaderboard": result}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CheckPlayer is the public kiosk endpoint: look up a player by exact number.
func (h *LeaderboardHandler) CheckPlayer(w http.ResponseWriter, r *http.Request) {
	playerNumber, err := getParamFromURL(r, "playerNumber")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.leaderboardService.CheckPlayer(r.Context(), playerNumber)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"result": result}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeaderboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leaderboardService.DashboardStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"stats": stats}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
