package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Edit replaces the content of a live comment. Only the author may edit.
// Submitting the current content is a no-op.
func (s *Service) Edit(ctx context.Context, input EditInput) (*domain.Comment, error) {
	if err := input.validate(s.maxLength); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)

	var (
		result  *domain.Comment
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if c.IsDeleted {
			return fmt.Errorf("comment %s is deleted: %w", c.ID, domain.ErrNotFound)
		}
		if c.AuthorID != input.EditorID {
			return fmt.Errorf("edit comment %s: %w", c.ID, domain.ErrNotAuthor)
		}

		if c.Content == content {
			result = c
			return nil
		}

		c.Content = content
		c.Touch(domain.UserActor(input.EditorID), s.clock.Now())

		result, err = s.comments.UpdateContent(txCtx, c)
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "comment edited",
			slog.String("user_id", input.EditorID.String()),
			slog.String("comment_id", input.CommentID.String()),
		)
	}

	return result, nil
}
