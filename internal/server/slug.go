package server

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Readable slugs end up printed on physical tags, so they are built from
// friendly words plus a short random suffix for uniqueness.
var (
	slugAdjectives = []string{
		"amber", "aqua", "azure", "coral", "ivory", "jade", "lilac", "mint",
		"peach", "plum", "rose", "sage", "sunny", "violet", "silver", "golden",
	}
	slugNouns = []string{
		"banana", "caterpillar", "comet", "river", "meadow", "maple", "pebble", "harbor",
		"lantern", "puzzle", "galaxy", "marble", "sunrise", "breeze", "willow", "orchid",
	}
)

// newSlug returns a human-readable slug not present in existing.
func newSlug(existing map[string]bool) string {
	for {
		slug := fmt.Sprintf("%s-%s-%s",
			slugAdjectives[rand.IntN(len(slugAdjectives))],
			slugNouns[rand.IntN(len(slugNouns))],
			uuid.NewString()[:4],
		)
		if !existing[slug] {
			return slug
		}
	}
}

// newToken issues an opaque team capability credential.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
