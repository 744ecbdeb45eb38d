package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashPassword returns a deterministic fixed-length hex digest of the
// plaintext. Deliberately unsalted and single-round: identical passwords
// produce identical stored digests. Documented weakness of this design;
// deployments that need production-grade storage should swap this for an
// adaptive scheme while keeping the register/login contracts.
func HashPassword(plaintext string) string {
	digest := sha3.Sum256([]byte(plaintext))
	return hex.EncodeToString(digest[:])
}
