package view

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// ViewerKey identifies who viewed for dedup purposes. Signed-in users are
// keyed by id. Anonymous viewers are keyed by a hash of their IP address,
// so every browser behind one address is the same viewer. Returns "" when
// there is nothing to identify the viewer by.
func ViewerKey(userID *uuid.UUID, ip *string) string {
	if userID != nil && *userID != uuid.Nil {
		return "u:" + userID.String()
	}

	addr := ""
	if ip != nil {
		addr = strings.TrimSpace(*ip)
	}
	if addr == "" {
		return ""
	}

	sum := blake2b.Sum256([]byte(addr))
	return "ip:" + hex.EncodeToString(sum[:16])
}
