package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Kishore8899/badminton-tournament-scorer/handlers"
)

// SetupRoutes wires every handler into the router. The API surfaces exactly
// the engine operations plus the derived leaderboard; clients never mutate
// entities except through these operations.
func SetupRoutes(
	router *chi.Mux,
	tournamentHandler *handlers.TournamentHandler,
	playerHandler *handlers.PlayerHandler,
	teamHandler *handlers.TeamHandler,
	groupHandler *handlers.GroupHandler,
	matchHandler *handlers.MatchHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/tournament", func(r chi.Router) {
		r.Get("/", tournamentHandler.GetDetails)
		r.Put("/", tournamentHandler.UpdateDetails)
		r.Get("/snapshot", tournamentHandler.GetSnapshot)
		r.Post("/reset", tournamentHandler.Reset) // destructive
		r.Get("/export", tournamentHandler.Export)
		r.Post("/import", tournamentHandler.Import) // destructive
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.ListPlayers)
		r.Post("/", playerHandler.CreatePlayer)
		r.Delete("/{playerID}", playerHandler.DeletePlayer) // destructive cascade
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeams)
		r.Post("/", teamHandler.CreateTeam)
		r.Delete("/{teamID}", teamHandler.DeleteTeam) // destructive cascade
	})

	router.Route("/groups", func(r chi.Router) {
		r.Get("/", groupHandler.ListGroups)
		r.Post("/", groupHandler.CreateGroup)
		r.Post("/auto-assign", groupHandler.AutoAssign) // destructive
		r.Put("/{groupID}/teams/{teamID}", groupHandler.AssignTeam)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.ListMatches)
		r.Post("/generate", matchHandler.GenerateFixtures)
		r.Put("/{matchID}/score", matchHandler.SetScore)
		r.Post("/{matchID}/end", matchHandler.EndMatch)
		r.Post("/{matchID}/reopen", matchHandler.ReopenMatch)
	})

	router.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
}
