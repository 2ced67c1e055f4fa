package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type ClueInfo struct {
	ClueID       int64    `json:"clueId"`
	Slug         string   `json:"slug,omitempty"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Variant      string   `json:"variant"`
	Kind         string   `json:"kind"`
	Options      []string `json:"options,omitempty"`
	Final        bool     `json:"final"`
	HintRevealed bool     `json:"hintRevealed"`
	Hint         string   `json:"hint,omitempty"`
}

type ClueViewResponse struct {
	Finished bool      `json:"finished"`
	Clue     *ClueInfo `json:"clue,omitempty"`
}

func handleClue(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clueID, err := strconv.ParseInt(chi.URLParam(r, "clueID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid clue id")
			return
		}
		clue, err := store.ClueByID(r.Context(), clueID)
		respondClueView(w, r, store, clue, err)
	}
}

// handleClueBySlug is the NFC/QR entry point: printed tags carry the
// clue's slug rather than its numeric id.
func handleClueBySlug(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clue, err := store.ClueBySlug(r.Context(), chi.URLParam(r, "slug"))
		respondClueView(w, r, store, clue, err)
	}
}

func handleCurrentClue(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := teamFrom(r)

		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		entries, err := store.ProgressByTeam(r.Context(), team.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		current := currentClue(clues, entries)
		if current == nil {
			respondClueView(w, r, store, hunt.Clue{}, ErrNotFound)
			return
		}
		respondClueView(w, r, store, *current, nil)
	}
}

// respondClueView is the shared tail of the three clue views: gate on the
// game clock, treat a missing clue as end-of-hunt, lazily create the
// ledger entry, and render the variant body.
func respondClueView(w http.ResponseWriter, r *http.Request, store Store, clue hunt.Clue, lookupErr error) {
	team := teamFrom(r)

	started, err := gameStarted(r.Context(), store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !started {
		writeError(w, http.StatusConflict, "game has not started")
		return
	}

	if errors.Is(lookupErr, ErrNotFound) {
		// Stale link or deleted clue: end of hunt, not a failure.
		writeJSON(w, http.StatusOK, ClueViewResponse{Finished: true})
		return
	}
	if lookupErr != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	prog, err := store.GetOrCreateProgress(r.Context(), team, clue)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	info := clueInfo(clue, prog)
	writeJSON(w, http.StatusOK, ClueViewResponse{Clue: &info})
}

func clueInfo(clue hunt.Clue, prog hunt.Progress) ClueInfo {
	info := ClueInfo{
		ClueID:       clue.ID,
		Slug:         clue.Slug,
		Title:        clue.Title,
		Body:         clue.Body(prog.Variant),
		Variant:      string(prog.Variant),
		Kind:         string(clue.Kind),
		Final:        clue.Final,
		HintRevealed: prog.UsedHint,
	}
	if clue.Kind == hunt.AnswerChoice {
		info.Options = hunt.ParseAnswerSpec(clue.Kind, clue.AnswerPayload).Options
	}
	if prog.UsedHint {
		info.Hint = clue.HintText
	}
	return info
}
