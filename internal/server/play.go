package server

import (
	"context"

	"github.com/trailworks/cluehunt/internal/hunt"
)

// gameStarted reads the global game clock: a non-blank stored value opens
// clue access.
func gameStarted(ctx context.Context, store Store) (bool, error) {
	raw, err := store.GetConfig(ctx, hunt.KeyGameStartedAt)
	if err != nil {
		return false, err
	}
	return hunt.Started(raw), nil
}

func loadWeights(ctx context.Context, store Store) (hunt.Weights, error) {
	cfg, err := store.AllConfig(ctx)
	if err != nil {
		return hunt.Weights{}, err
	}
	return hunt.WeightsFromConfig(cfg), nil
}

// advance resolves what happens after a team passes (solves or skips) a
// clue: the terminal clue finishes the hunt and stamps the team's
// completion, anything else yields the next clue in order. The solve was
// already written by the caller, so a crash between the two writes leaves
// the team in-progress and a retry repairs it.
func advance(ctx context.Context, store Store, team hunt.Team, clues []hunt.Clue, current hunt.Clue) (next *hunt.Clue, finished bool, err error) {
	if hunt.Terminal(clues, current) {
		if err := store.CompleteTeam(ctx, team.ID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	return hunt.NextClue(clues, current), false, nil
}

// scoreboard is a read-only snapshot of everything scoring needs: the
// ledger, the clue set, the weights, and the game clock. Leaderboard,
// admin overview, and export all derive from the same snapshot logic.
type scoreboard struct {
	clues    []hunt.Clue
	clueByID map[int64]hunt.Clue
	weights  hunt.Weights
	startRaw string
	teams    []hunt.Team
	entries  map[int64][]hunt.Progress // keyed by team id
}

func loadScoreboard(ctx context.Context, store Store) (*scoreboard, error) {
	clues, err := store.ListClues(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := store.AllConfig(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := store.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	all, err := store.AllProgress(ctx)
	if err != nil {
		return nil, err
	}

	b := &scoreboard{
		clues:    clues,
		clueByID: make(map[int64]hunt.Clue, len(clues)),
		weights:  hunt.WeightsFromConfig(cfg),
		startRaw: cfg[hunt.KeyGameStartedAt],
		teams:    teams,
		entries:  make(map[int64][]hunt.Progress),
	}
	for _, c := range clues {
		b.clueByID[c.ID] = c
	}
	for _, p := range all {
		b.entries[p.TeamID] = append(b.entries[p.TeamID], p)
	}
	return b, nil
}

func (b *scoreboard) scoreFor(team hunt.Team) hunt.Score {
	baseline := hunt.Baseline(b.startRaw, team.CreatedAt)
	return hunt.ComputeScore(team, b.entries[team.ID], b.clueByID, b.weights, baseline)
}

// standings returns ranked rows; teams enter in creation order so full
// ties stay in that order.
func (b *scoreboard) standings() []hunt.Standing {
	rows := make([]hunt.Standing, 0, len(b.teams))
	for _, t := range b.teams {
		rows = append(rows, hunt.Standing{Team: t, Score: b.scoreFor(t)})
	}
	hunt.Rank(rows)
	return rows
}
