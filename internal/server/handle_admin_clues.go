package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trailworks/cluehunt/internal/hunt"
)

type AdminClueRequest struct {
	Title         string `json:"title"`
	BodyVariantA  string `json:"bodyVariantA"`
	BodyVariantB  string `json:"bodyVariantB"`
	Kind          string `json:"kind"`
	AnswerPayload string `json:"answerPayload"`
	HintText      string `json:"hintText"`
	Slug          string `json:"slug"`
	OrderIndex    int    `json:"orderIndex"`
	Final         bool   `json:"final"`
}

type AdminClueResponse struct {
	ClueID        int64  `json:"clueId"`
	Title         string `json:"title"`
	BodyVariantA  string `json:"bodyVariantA"`
	BodyVariantB  string `json:"bodyVariantB"`
	Kind          string `json:"kind"`
	AnswerPayload string `json:"answerPayload"`
	HintText      string `json:"hintText"`
	Slug          string `json:"slug"`
	OrderIndex    int    `json:"orderIndex"`
	Final         bool   `json:"final"`
}

func (req *AdminClueRequest) validate() string {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Title == "" {
		return "title is required"
	}
	if req.Kind == "" {
		req.Kind = string(hunt.AnswerTap)
	}
	if !hunt.ValidKind(hunt.AnswerKind(req.Kind)) {
		return "kind must be one of tap, text, choice"
	}
	if req.Kind == string(hunt.AnswerChoice) {
		spec := hunt.ParseAnswerSpec(hunt.AnswerChoice, req.AnswerPayload)
		if len(spec.Options) == 0 {
			return "answerPayload must be a JSON array of option strings for choice clues"
		}
	}
	return ""
}

func (req AdminClueRequest) toClue(id int64) hunt.Clue {
	return hunt.Clue{
		ID:            id,
		Title:         req.Title,
		BodyVariantA:  req.BodyVariantA,
		BodyVariantB:  req.BodyVariantB,
		Kind:          hunt.AnswerKind(req.Kind),
		AnswerPayload: req.AnswerPayload,
		HintText:      req.HintText,
		Slug:          req.Slug,
		OrderIndex:    req.OrderIndex,
		Final:         req.Final,
	}
}

func adminClueResponse(c hunt.Clue) AdminClueResponse {
	return AdminClueResponse{
		ClueID:        c.ID,
		Title:         c.Title,
		BodyVariantA:  c.BodyVariantA,
		BodyVariantB:  c.BodyVariantB,
		Kind:          string(c.Kind),
		AnswerPayload: c.AnswerPayload,
		HintText:      c.HintText,
		Slug:          c.Slug,
		OrderIndex:    c.OrderIndex,
		Final:         c.Final,
	}
}

func handleAdminListClues(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clues, err := store.ListClues(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := make([]AdminClueResponse, 0, len(clues))
		for _, c := range clues {
			resp = append(resp, adminClueResponse(c))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleAdminCreateClue(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminClueRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		if req.Slug == "" {
			existing, err := store.ListSlugs(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			req.Slug = newSlug(existing)
		}

		clue, err := store.CreateClue(r.Context(), req.toClue(0))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, adminClueResponse(clue))
	}
}

func handleAdminGetClue(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "clueID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid clue id")
			return
		}

		clue, err := store.ClueByID(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "clue not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, adminClueResponse(clue))
	}
}

func handleAdminUpdateClue(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "clueID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid clue id")
			return
		}

		var req AdminClueRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		// An empty slug keeps the stored one; printed tags stay valid.
		if req.Slug == "" {
			current, err := store.ClueByID(r.Context(), id)
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "clue not found")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			req.Slug = current.Slug
		}
		if req.Slug == "" {
			existing, err := store.ListSlugs(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			req.Slug = newSlug(existing)
		}

		clue, err := store.UpdateClue(r.Context(), req.toClue(id))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "clue not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, adminClueResponse(clue))
	}
}

// handleAdminDeleteClue removes a clue; its progress entries go with it
// via the cascade.
func handleAdminDeleteClue(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "clueID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid clue id")
			return
		}

		err = store.DeleteClue(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "clue not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
