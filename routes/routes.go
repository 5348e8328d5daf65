package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hmonterrosa/scoring-dashboard/handlers"
	"github.com/hmonterrosa/scoring-dashboard/middleware"
	"github.com/hmonterrosa/scoring-dashboard/models"
)

// SetupRoutes wires the full HTTP surface. The leaderboard, the kiosk lookup
// and the websocket feed are public; everything else needs a session, and
// game management needs the admin role.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	scoringHandler *handlers.ScoringHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	// Public surface
	router.Post("/auth/login", authHandler.Login)
	router.Get("/leaderboard", leaderboardHandler.GetStandings)
	router.Get("/check/{playerNumber}", leaderboardHandler.CheckPlayer)
	router.Get("/ws/leaderboard", webSocketHandler.ServeLeaderboard)

	// Any authenticated user (admin or attendant)
	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/dashboard", leaderboardHandler.GetDashboardStats)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.GetAllPlayers)
			r.Post("/", playerHandler.CreatePlayer)
			r.Get("/{playerID}", playerHandler.GetPlayerByID)
			r.Delete("/{playerID}", playerHandler.DeletePlayer)
		})

		r.Route("/scores", func(r chi.Router) {
			r.Post("/", scoringHandler.RecordScore)
			r.Get("/recent", scoringHandler.GetRecentScores)
		})
	})

	// Game management is admin-only; reading the game list is open to any
	// authenticated user (the scoring form needs it).
	router.Route("/games", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/", gameHandler.GetAllGames)
		r.Get("/icons", gameHandler.GetIconSuggestions)
		r.Get("/{gameID}", gameHandler.GetGameByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authorize(string(models.RoleAdmin)))

			r.Post("/", gameHandler.CreateGame)
			r.Delete("/{gameID}", gameHandler.DeleteGame)
			r.Post("/{gameID}/logo", gameHandler.UploadGameLogo)
		})
	})
}
