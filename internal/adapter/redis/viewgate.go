package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/community-backend/internal/domain"
)

const viewGatePrefix = "views:seen:"

// releaseScript deletes the key only while it still holds the stamp of the
// admission being released, so a later admission is never undone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// ViewGate decides whether a view is counted using SET NX with a TTL equal
// to the dedup window. The first view of (entity, viewer) inside a window
// wins; every later one until the key expires is rejected.
type ViewGate struct {
	client goredis.UniversalClient
}

// NewViewGate creates a gate on top of an existing client.
func NewViewGate(client goredis.UniversalClient) *ViewGate {
	return &ViewGate{client: client}
}

// Admit reports whether the view at the given time should be counted.
func (g *ViewGate) Admit(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time, window time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, gateKey(ref, viewerKey), stamp(at), window).Result()
	if err != nil {
		return false, fmt.Errorf("view gate %s: %w: %w", ref, domain.ErrStorage, err)
	}
	return ok, nil
}

// Release drops the admission made at the given time. It is a no-op when
// the key has expired or belongs to another admission.
func (g *ViewGate) Release(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time) error {
	if err := releaseScript.Run(ctx, g.client, []string{gateKey(ref, viewerKey)}, stamp(at)).Err(); err != nil {
		return fmt.Errorf("release view gate %s: %w: %w", ref, domain.ErrStorage, err)
	}
	return nil
}

func gateKey(ref domain.EntityReference, viewerKey string) string {
	return viewGatePrefix + ref.String() + ":" + viewerKey
}

func stamp(at time.Time) string {
	return strconv.FormatInt(at.UTC().UnixNano(), 10)
}
