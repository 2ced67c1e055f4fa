package hunt

import (
	"crypto/sha256"
	"strconv"
)

// AssignVariant deterministically maps a team token and clue id to a
// variant: SHA-256 of "token:clueID", interpreted as a big integer, even
// picks A and odd picks B. The parity of the digest equals the parity of
// its last byte, so only that byte is inspected. Stable across processes
// and restarts.
func AssignVariant(token string, clueID int64) Variant {
	sum := sha256.Sum256([]byte(token + ":" + strconv.FormatInt(clueID, 10)))
	if sum[len(sum)-1]%2 == 0 {
		return VariantA
	}
	return VariantB
}
