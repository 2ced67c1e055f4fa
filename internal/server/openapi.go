package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "ClueHunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the ClueHunt scavenger hunt game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/teams
	postTeams, _ := r.NewOperationContext(http.MethodPost, "/api/teams")
	postTeams.SetSummary("Register a team")
	postTeams.SetDescription("Registers a new team and returns its id plus the secret play token.")
	postTeams.AddReqStructure(RegisterRequest{})
	postTeams.AddRespStructure(RegisterResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postTeams.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postTeams)

	// GET /api/game
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/game")
	getGame.SetSummary("Game status")
	getGame.SetDescription("Public game status: whether the hunt has started and how many clues it has.")
	getGame.AddRespStructure(GameStatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getGame)

	// GET /api/teams/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/teams/me")
	getMe.SetSummary("Current team")
	getMe.SetDescription("Returns the calling team's status and position. Requires Bearer token.")
	getMe.AddRespStructure(MeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/clues/current
	getCurrent, _ := r.NewOperationContext(http.MethodGet, "/api/clues/current")
	getCurrent.SetSummary("Current clue")
	getCurrent.SetDescription("Returns the team's first unsolved clue in order. Requires Bearer token.")
	getCurrent.AddRespStructure(ClueViewResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getCurrent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	getCurrent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getCurrent)

	// GET /api/clues/slug/{slug}
	getBySlug, _ := r.NewOperationContext(http.MethodGet, "/api/clues/slug/{slug}")
	getBySlug.SetSummary("Clue by slug")
	getBySlug.SetDescription("Looks up a clue by its printed tag slug. Requires Bearer token.")
	getBySlug.AddRespStructure(ClueViewResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getBySlug.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	getBySlug.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getBySlug)

	// GET /api/clues/{clueID}
	getClue, _ := r.NewOperationContext(http.MethodGet, "/api/clues/{clueID}")
	getClue.SetSummary("View clue")
	getClue.SetDescription("Returns the clue body for the team's assigned variant. Requires Bearer token.")
	getClue.AddRespStructure(ClueViewResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	getClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getClue)

	// POST /api/clues/{clueID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/clues/{clueID}/answer")
	postAnswer.SetSummary("Submit answer")
	postAnswer.SetDescription("Checks an answer; a correct one advances the team. Requires Bearer token.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// POST /api/clues/{clueID}/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/clues/{clueID}/hint")
	postHint.SetSummary("Request hint")
	postHint.SetDescription("Reveals the clue's hint after the delay; costs points once. Requires Bearer token.")
	postHint.AddRespStructure(HintResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postHint)

	// POST /api/clues/{clueID}/skip
	postSkip, _ := r.NewOperationContext(http.MethodPost, "/api/clues/{clueID}/skip")
	postSkip.SetSummary("Skip clue")
	postSkip.SetDescription("Passes the clue for a penalty and advances the team. Requires Bearer token.")
	postSkip.AddRespStructure(SkipResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSkip.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postSkip.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSkip)

	// GET /api/leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getBoard.SetSummary("Leaderboard")
	getBoard.SetDescription("Public ranking of all teams by score.")
	getBoard.AddRespStructure([]LeaderboardRow{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// GET /api/admin/overview
	getOverview, _ := r.NewOperationContext(http.MethodGet, "/api/admin/overview")
	getOverview.SetSummary("Admin overview")
	getOverview.SetDescription("Live dashboard of every team's position and score. Requires Basic auth.")
	getOverview.AddRespStructure(AdminOverviewResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getOverview.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getOverview)

	// POST /api/admin/game/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/admin/game/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Stamps the shared start instant and opens clue access. Requires Basic auth.")
	postStart.AddRespStructure(StartGameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postStart)

	// POST /api/admin/game/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/admin/game/reset")
	postReset.SetSummary("Reset game")
	postReset.SetDescription("Deletes all teams and progress; clues survive. Requires Basic auth.")
	postReset.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postReset)

	// GET /api/admin/clues
	listClues, _ := r.NewOperationContext(http.MethodGet, "/api/admin/clues")
	listClues.SetSummary("List clues")
	listClues.SetDescription("Returns all clues with answers and slugs. Requires Basic auth.")
	listClues.AddRespStructure([]AdminClueResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	listClues.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listClues)

	// POST /api/admin/clues
	createClue, _ := r.NewOperationContext(http.MethodPost, "/api/admin/clues")
	createClue.SetSummary("Create clue")
	createClue.SetDescription("Creates a clue. Auto-generates a slug if blank. Requires Basic auth.")
	createClue.AddReqStructure(AdminClueRequest{})
	createClue.AddRespStructure(AdminClueResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	createClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(createClue)

	// GET /api/admin/clues/{clueID}
	getAdminClue, _ := r.NewOperationContext(http.MethodGet, "/api/admin/clues/{clueID}")
	getAdminClue.SetSummary("Get clue")
	getAdminClue.SetDescription("Returns one clue including both variants and the answer. Requires Basic auth.")
	getAdminClue.AddRespStructure(AdminClueResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getAdminClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getAdminClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getAdminClue)

	// PUT /api/admin/clues/{clueID}
	updateClue, _ := r.NewOperationContext(http.MethodPut, "/api/admin/clues/{clueID}")
	updateClue.SetSummary("Update clue")
	updateClue.SetDescription("Updates a clue. An empty slug keeps the stored one. Requires Basic auth.")
	updateClue.AddReqStructure(AdminClueRequest{})
	updateClue.AddRespStructure(AdminClueResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	updateClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	updateClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	updateClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(updateClue)

	// DELETE /api/admin/clues/{clueID}
	deleteClue, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/clues/{clueID}")
	deleteClue.SetSummary("Delete clue")
	deleteClue.SetDescription("Deletes a clue and its progress entries. Requires Basic auth.")
	deleteClue.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	deleteClue.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteClue)

	// GET /api/admin/settings
	getSettings, _ := r.NewOperationContext(http.MethodGet, "/api/admin/settings")
	getSettings.SetSummary("Get settings")
	getSettings.SetDescription("Returns the effective scoring settings. Requires Basic auth.")
	getSettings.AddRespStructure(AdminSettings{}, openapi.WithHTTPStatus(http.StatusOK))
	getSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getSettings)

	// PUT /api/admin/settings
	putSettings, _ := r.NewOperationContext(http.MethodPut, "/api/admin/settings")
	putSettings.SetSummary("Update settings")
	putSettings.SetDescription("Updates the scoring settings; changes apply to all future score reads. Requires Basic auth.")
	putSettings.AddReqStructure(AdminSettings{})
	putSettings.AddRespStructure(AdminSettings{}, openapi.WithHTTPStatus(http.StatusOK))
	putSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putSettings)

	// GET /api/admin/export
	getExport, _ := r.NewOperationContext(http.MethodGet, "/api/admin/export")
	getExport.SetSummary("Export results")
	getExport.SetDescription("Dumps every team with its full per-clue record. JSON by default, CSV with ?format=csv. Requires Basic auth.")
	getExport.AddRespStructure(ExportResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getExport.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getExport)

	// GET /api/admin/bundle
	getBundle, _ := r.NewOperationContext(http.MethodGet, "/api/admin/bundle")
	getBundle.SetSummary("Export bundle")
	getBundle.SetDescription("Returns the portable game definition: all clues plus config. Requires Basic auth.")
	getBundle.AddRespStructure(Bundle{}, openapi.WithHTTPStatus(http.StatusOK))
	getBundle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getBundle)

	// PUT /api/admin/bundle
	putBundle, _ := r.NewOperationContext(http.MethodPut, "/api/admin/bundle")
	putBundle.SetSummary("Import bundle")
	putBundle.SetDescription("Replaces the whole game definition in one transaction. A rejected bundle changes nothing. Requires Basic auth.")
	putBundle.AddReqStructure(Bundle{})
	putBundle.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	putBundle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putBundle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putBundle)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
