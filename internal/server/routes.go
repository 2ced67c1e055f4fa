package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, db *sql.DB, adminPassword string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("ClueHunt API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Post("/teams", handleRegister(store))
		r.Get("/game", handleGameStatus(store))
		r.Get("/leaderboard", handleLeaderboard(store))

		// Team routes — identity resolved by teamMiddleware from the
		// Bearer credential.
		r.Group(func(r chi.Router) {
			r.Use(teamMiddleware(store))
			r.Get("/teams/me", handleTeamMe(store))
			r.Get("/clues/current", handleCurrentClue(store))
			r.Get("/clues/slug/{slug}", handleClueBySlug(store))
			r.Get("/clues/{clueID}", handleClue(store))
			r.Post("/clues/{clueID}/answer", handleAnswer(store))
			r.Post("/clues/{clueID}/hint", handleHint(store))
			r.Post("/clues/{clueID}/skip", handleSkip(store))
		})

		// Admin routes — shared secret over HTTP Basic, fail closed.
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminAuthMiddleware(adminPassword))
			r.Get("/overview", handleAdminOverview(store))
			r.Post("/game/start", handleAdminStartGame(store, logger))
			r.Post("/game/reset", handleAdminReset(store, logger))
			r.Get("/clues", handleAdminListClues(store))
			r.Post("/clues", handleAdminCreateClue(store))
			r.Get("/clues/{clueID}", handleAdminGetClue(store))
			r.Put("/clues/{clueID}", handleAdminUpdateClue(store))
			r.Delete("/clues/{clueID}", handleAdminDeleteClue(store))
			r.Get("/settings", handleAdminGetSettings(store))
			r.Put("/settings", handleAdminUpdateSettings(store))
			r.Get("/export", handleAdminExport(store))
			r.Get("/bundle", handleAdminGetBundle(store))
			r.Put("/bundle", handleAdminReplaceBundle(store, logger))
		})
	})
}
