package server

import (
	"net/http"
	"strconv"

	"github.com/trailworks/cluehunt/internal/hunt"
)

// AdminSettings is the configurable scoring surface. The wrong-answer
// penalty is deliberately absent: it is a fixed constant.
type AdminSettings struct {
	PointsSolve              int `json:"pointsSolve"`
	PenaltyHint              int `json:"penaltyHint"`
	PenaltySkip              int `json:"penaltySkip"`
	TimePenaltyWindowSeconds int `json:"timePenaltyWindowSeconds"`
	TimePenaltyPoints        int `json:"timePenaltyPoints"`
	HintDelaySeconds         int `json:"hintDelaySeconds"`
}

func settingsFromWeights(w hunt.Weights) AdminSettings {
	return AdminSettings{
		PointsSolve:              w.PointsSolve,
		PenaltyHint:              w.PenaltyHint,
		PenaltySkip:              w.PenaltySkip,
		TimePenaltyWindowSeconds: int(w.TimePenaltyWindow.Seconds()),
		TimePenaltyPoints:        w.TimePenaltyPoints,
		HintDelaySeconds:         int(w.HintDelay.Seconds()),
	}
}

func handleAdminGetSettings(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weights, err := loadWeights(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, settingsFromWeights(weights))
	}
}

func handleAdminUpdateSettings(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminSettings
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.TimePenaltyWindowSeconds <= 0 {
			writeError(w, http.StatusBadRequest, "timePenaltyWindowSeconds must be positive")
			return
		}
		if req.HintDelaySeconds < 0 {
			writeError(w, http.StatusBadRequest, "hintDelaySeconds must not be negative")
			return
		}

		values := map[string]int{
			hunt.KeyPointsSolve:       req.PointsSolve,
			hunt.KeyPenaltyHint:       req.PenaltyHint,
			hunt.KeyPenaltySkip:       req.PenaltySkip,
			hunt.KeyTimePenaltyWindow: req.TimePenaltyWindowSeconds,
			hunt.KeyTimePenaltyPoints: req.TimePenaltyPoints,
			hunt.KeyHintDelay:         req.HintDelaySeconds,
		}
		for key, v := range values {
			if err := store.SetConfig(r.Context(), key, strconv.Itoa(v)); err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}

		weights, err := loadWeights(r.Context(), store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, settingsFromWeights(weights))
	}
}
