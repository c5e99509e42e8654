package comment

import (
	"context"
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Get returns a comment by id. A soft-deleted comment is returned with its
// content redacted so replies can still show what they answer.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("comment_id", "required")
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	redacted := c.Redacted()
	return &redacted, nil
}

// RepliesOf returns the live replies of a comment in creation order. The
// sequence pages through storage lazily and can be ranged over again to
// restart from the first reply. A storage failure is yielded once as the
// error value and ends the sequence.
func (s *Service) RepliesOf(ctx context.Context, parentID uuid.UUID) iter.Seq2[domain.Comment, error] {
	pageSize := s.repliesPer
	if pageSize <= 0 {
		pageSize = DefaultListLimit
	}

	return func(yield func(domain.Comment, error) bool) {
		var after *domain.Cursor
		for {
			page, err := s.comments.ListReplies(ctx, parentID, after, pageSize)
			if err != nil {
				yield(domain.Comment{}, fmt.Errorf("list replies: %w", err))
				return
			}

			for _, c := range page {
				if !yield(c, nil) {
					return
				}
			}

			if len(page) < pageSize {
				return
			}
			cur := page[len(page)-1].CursorOf()
			after = &cur
		}
	}
}

// CommentsFor lists top-level comments on an entity in creation order.
// Soft-deleted comments are left out unless IncludeDeleted is set, in
// which case they appear with redacted content.
func (s *Service) CommentsFor(ctx context.Context, input ListInput) ([]domain.Comment, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	comments, total, err := s.comments.ListTopLevel(ctx, input.Ref, input.IncludeDeleted, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	for i := range comments {
		comments[i] = comments[i].Redacted()
	}
	return comments, total, nil
}

// CountsFor returns live top-level and total comment counts. Total includes
// replies, also those whose parent was deleted.
func (s *Service) CountsFor(ctx context.Context, ref domain.EntityReference) (domain.CommentCounts, error) {
	if err := ref.Validate(); err != nil {
		return domain.CommentCounts{}, err
	}

	topLevel, total, err := s.comments.Counts(ctx, ref)
	if err != nil {
		return domain.CommentCounts{}, fmt.Errorf("count comments: %w", err)
	}
	return domain.CommentCounts{TopLevel: topLevel, Total: total}, nil
}
