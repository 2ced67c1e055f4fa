package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/trailworks/cluehunt/internal/hunt"
)

// Bundle is the portable game definition: the full clue set plus the
// config table. Exporting from one install and importing into another
// reproduces the game.
type Bundle struct {
	Config map[string]string  `json:"config"`
	Clues  []AdminClueRequest `json:"clues"`
}

func handleAdminGetBundle(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		cfg, err := store.AllConfig(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		bundle := Bundle{Config: cfg, Clues: make([]AdminClueRequest, 0, len(clues))}
		for _, c := range clues {
			bundle.Clues = append(bundle.Clues, AdminClueRequest{
				Title:         c.Title,
				BodyVariantA:  c.BodyVariantA,
				BodyVariantB:  c.BodyVariantB,
				Kind:          string(c.Kind),
				AnswerPayload: c.AnswerPayload,
				HintText:      c.HintText,
				Slug:          c.Slug,
				OrderIndex:    c.OrderIndex,
				Final:         c.Final,
			})
		}
		writeJSON(w, http.StatusOK, bundle)
	}
}

// handleAdminReplaceBundle swaps the whole game definition in one
// transaction. Validation runs up front; a rejected bundle leaves the
// stored clues and config untouched.
func handleAdminReplaceBundle(store Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bundle Bundle
		if err := readJSON(r, &bundle); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(bundle.Clues) == 0 {
			writeError(w, http.StatusBadRequest, "bundle must contain at least one clue")
			return
		}

		clues := make([]hunt.Clue, 0, len(bundle.Clues))
		seenSlugs := make(map[string]bool, len(bundle.Clues))
		for i := range bundle.Clues {
			req := &bundle.Clues[i]
			if msg := req.validate(); msg != "" {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("clue %d: %s", i+1, msg))
				return
			}
			if req.Slug != "" {
				slug := strings.ToLower(req.Slug)
				if seenSlugs[slug] {
					writeError(w, http.StatusBadRequest, fmt.Sprintf("clue %d: duplicate slug %q", i+1, req.Slug))
					return
				}
				seenSlugs[slug] = true
			}
			clues = append(clues, req.toClue(0))
		}
		for i := range clues {
			if clues[i].Slug == "" {
				clues[i].Slug = newSlug(seenSlugs)
				seenSlugs[clues[i].Slug] = true
			}
		}

		if bundle.Config == nil {
			bundle.Config = map[string]string{}
		}
		if err := store.ReplaceBundle(r.Context(), clues, bundle.Config); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.Info("bundle imported", "clues", len(clues), "config_keys", len(bundle.Config))
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"clues":  len(clues),
		})
	}
}
