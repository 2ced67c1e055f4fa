package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/trailworks/cluehunt/internal/hunt"
)

var errNoTeam = errors.New("no valid team identity")

// teamFromRequest resolves the team capability credential: the
// Authorization header carries "Bearer <teamID>:<token>", and the token
// must match the one stored for that id.
func teamFromRequest(r *http.Request, store Store) (hunt.Team, error) {
	auth := r.Header.Get("Authorization")
	cred, found := strings.CutPrefix(auth, "Bearer ")
	if !found || cred == "" {
		return hunt.Team{}, errNoTeam
	}

	idStr, token, ok := strings.Cut(cred, ":")
	if !ok || token == "" {
		return hunt.Team{}, errNoTeam
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return hunt.Team{}, errNoTeam
	}

	team, err := store.TeamByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return hunt.Team{}, errNoTeam
	}
	if err != nil {
		return hunt.Team{}, err
	}
	if subtle.ConstantTimeCompare([]byte(team.Token), []byte(token)) != 1 {
		return hunt.Team{}, errNoTeam
	}
	return team, nil
}
