package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// ScoreFor returns the net score (up minus down) with the raw counts.
func (s *Service) ScoreFor(ctx context.Context, ref domain.EntityReference) (domain.VoteScore, error) {
	if err := ref.Validate(); err != nil {
		return domain.VoteScore{}, err
	}

	up, down, err := s.votes.Tally(ctx, ref)
	if err != nil {
		return domain.VoteScore{}, fmt.Errorf("tally votes: %w", err)
	}
	return domain.NewVoteScore(up, down), nil
}

// VoteOf returns the user's live vote kind, or nil if the user has not voted.
func (s *Service) VoteOf(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.VoteKind, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	v, err := s.votes.FindLive(ctx, ref, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find vote: %w", err)
	}
	return &v.Kind, nil
}
