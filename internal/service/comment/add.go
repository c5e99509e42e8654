package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Add posts a comment. With ParentID set the comment is a reply: the parent
// must be a live top-level comment on the same entity, otherwise the call
// fails with ErrInvalidThreadDepth (reply to a reply or to another entity's
// comment) or ErrNotFound (parent missing or deleted).
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Comment, error) {
	if err := input.validate(s.maxLength); err != nil {
		return nil, err
	}

	if err := s.entities.Ensure(ctx, input.Ref); err != nil {
		return nil, err
	}

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.ParentID != nil {
			if err := s.checkParent(txCtx, input.Ref, *input.ParentID); err != nil {
				return err
			}
		}

		var err error
		created, err = s.comments.Create(txCtx, &domain.Comment{
			ID:       uuid.New(),
			Ref:      input.Ref,
			AuthorID: input.AuthorID,
			Content:  strings.TrimSpace(input.Content),
			ParentID: input.ParentID,
			Audit:    domain.NewAudit(domain.UserActor(input.AuthorID), s.clock.Now()),
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", input.AuthorID.String()),
		slog.String("comment_id", created.ID.String()),
		slog.String("entity_id", input.Ref.ID.String()),
		slog.String("entity_kind", input.Ref.Kind.String()),
	}
	if input.ParentID != nil {
		attrs = append(attrs, slog.String("parent_id", input.ParentID.String()))
	}
	s.log.InfoContext(ctx, "comment added", attrs...)

	return created, nil
}

// checkParent locks the parent row so it cannot be deleted while the reply
// is being written.
func (s *Service) checkParent(ctx context.Context, ref domain.EntityReference, parentID uuid.UUID) error {
	parent, err := s.comments.GetByIDForUpdate(ctx, parentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("parent comment %s: %w", parentID, domain.ErrNotFound)
		}
		return fmt.Errorf("get parent comment: %w", err)
	}

	if parent.IsDeleted {
		return fmt.Errorf("parent comment %s is deleted: %w", parentID, domain.ErrNotFound)
	}
	if parent.IsReply() {
		return fmt.Errorf("parent comment %s is a reply: %w", parentID, domain.ErrInvalidThreadDepth)
	}
	if parent.Ref != ref {
		return fmt.Errorf("parent comment %s belongs to %s: %w", parentID, parent.Ref, domain.ErrInvalidThreadDepth)
	}
	return nil
}
