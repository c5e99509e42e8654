package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Delete soft-deletes a comment. Only the author may delete. Replies are
// left in place and keep pointing at the deleted parent. Deleting an
// already deleted comment is a no-op.
func (s *Service) Delete(ctx context.Context, input ActInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	deleted := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if c.AuthorID != input.ActorID {
			return fmt.Errorf("delete comment %s: %w", c.ID, domain.ErrNotAuthor)
		}

		if !c.SoftDelete(domain.UserActor(input.ActorID), s.clock.Now()) {
			return nil
		}
		if err := s.comments.SoftDelete(txCtx, c); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.InfoContext(ctx, "comment deleted",
			slog.String("user_id", input.ActorID.String()),
			slog.String("comment_id", input.CommentID.String()),
		)
	}

	return nil
}

// Restore brings back a soft-deleted comment. Only the author may restore.
// The deletion stamp of the last delete is kept. Restoring a live comment
// is a no-op.
func (s *Service) Restore(ctx context.Context, input ActInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result   *domain.Comment
		restored bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if c.AuthorID != input.ActorID {
			return fmt.Errorf("restore comment %s: %w", c.ID, domain.ErrNotAuthor)
		}

		if !c.Restore(domain.UserActor(input.ActorID), s.clock.Now()) {
			result = c
			return nil
		}

		result, err = s.comments.Restore(txCtx, c)
		if err != nil {
			return fmt.Errorf("restore comment: %w", err)
		}
		restored = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if restored {
		s.log.InfoContext(ctx, "comment restored",
			slog.String("user_id", input.ActorID.String()),
			slog.String("comment_id", input.CommentID.String()),
		)
	}

	return result, nil
}
