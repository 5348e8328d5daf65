package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hmonterrosa/scoring-dashboard/lookup"
	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	user *models.User
	err  error
}

func (s *stubAuthService) Login(context.Context, services.LoginInput) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubGameService struct {
	game  *models.Game
	games []models.Game
	err   error
}

func (s *stubGameService) CreateGame(context.Context, services.CreateGameInput) (*models.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.game, nil
}

func (s *stubGameService) GetGameByID(context.Context, string) (*models.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.game, nil
}

func (s *stubGameService) GetAllGames(context.Context) ([]models.Game, error) {
	return s.games, s.err
}

func (s *stubGameService) DeleteGame(context.Context, string) error {
	return s.err
}

func (s *stubGameService) UploadGameLogo(context.Context, string, io.Reader, string) (*models.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.game, nil
}

func (s *stubGameService) IconSuggestions() []lookup.IconEntry {
	return lookup.GameIconEntries()
}

type stubScoringService struct {
	score     *models.Score
	recent    []services.RecentScore
	err       error
	gotGameID string
	gotLimit  int
}

func (s *stubScoringService) RecordScore(context.Context, services.RecordScoreInput) (*models.Score, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.score, nil
}

func (s *stubScoringService) RecentScores(_ context.Context, gameID string, limit int) ([]services.RecentScore, error) {
	s.gotGameID = gameID
	s.gotLimit = limit
	return s.recent, s.err
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"game not found", services.ErrGameNotFound, http.StatusNotFound},
		{"player not found", services.ErrPlayerNotFound, http.StatusNotFound},
		{"generic not found", services.ErrNotFound, http.StatusNotFound},
		{"game name conflict", services.ErrGameNameConflict, http.StatusConflict},
		{"player number conflict", services.ErrPlayerNumberConflict, http.StatusConflict},
		{"name required", services.ErrGameNameRequired, http.StatusBadRequest},
		{"negative points", services.ErrGamePointsNegative, http.StatusBadRequest},
		{"number not numeric", services.ErrPlayerNumberNotNumeric, http.StatusBadRequest},
		{"invalid point type", services.ErrInvalidPointType, http.StatusBadRequest},
		{"selection incomplete", services.ErrScoreSelectionIncomplete, http.StatusBadRequest},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", services.ErrForbiddenOperation, http.StatusForbidden},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceErrorToHTTP(rec, req, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Contains(t, body, "error")
		})
	}
}

func TestReadJSONRejectsMalformedBodies(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"syntax error", `{"name":`},
		{"unknown field", `{"surprise": true}`},
		{"empty body", ``},
		{"trailing value", `{"name":"a"}{"name":"b"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dst struct {
				Name string `json:"name"`
			}
			assert.Error(t, readJSON(rec, req, &dst))
		})
	}
}
