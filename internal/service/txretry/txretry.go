// Package txretry runs the find-then-create-or-update step shared by the
// per-user interaction stores.
package txretry

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// TxRunner runs fn inside a transaction carried in ctx.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrUpdate runs fn in a transaction. fn looks up the caller's live
// record and either creates or updates it. When the create loses a race
// against a concurrent writer the unique index reports ErrAlreadyExists;
// fn then runs once more in a fresh transaction, where the lookup sees the
// winner's row and takes the update path. A second failure of the same
// kind is reported as ErrConcurrencyConflict.
func CreateOrUpdate(ctx context.Context, tx TxRunner, fn func(ctx context.Context) error) error {
	err := tx.RunInTx(ctx, fn)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}

	err = tx.RunInTx(ctx, fn)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("%w: %w", domain.ErrConcurrencyConflict, err)
	}
	return err
}
