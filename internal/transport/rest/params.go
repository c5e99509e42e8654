package rest

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/ctxutil"
)

const maxBodyBytes = 64 << 10

// entityRef reads {kind} and {id} from the route. Writes 400 on failure.
func entityRef(w http.ResponseWriter, r *http.Request) (domain.EntityReference, bool) {
	kind, ok := domain.ParseEntityKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown entity kind")
		return domain.EntityReference{}, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entity id")
		return domain.EntityReference{}, false
	}
	return domain.EntityReference{ID: id, Kind: kind}, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// requireUser returns the authenticated user id or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// queryInt parses an integer query parameter. Missing or malformed values
// yield def; range checks are left to the service.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryBool(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
