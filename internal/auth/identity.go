package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Identity is the caller extracted from a validated bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}
