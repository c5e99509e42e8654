package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Resolve returns display metadata for a live entity.
// Returns domain.ErrUnknownEntity if ref does not resolve.
func (s *Service) Resolve(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error) {
	if err := ref.Validate(); err != nil {
		return domain.ContentMetadata{}, err
	}

	meta, err := s.items.Metadata(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ContentMetadata{}, fmt.Errorf("resolve %s: %w", ref, domain.ErrUnknownEntity)
		}
		return domain.ContentMetadata{}, fmt.Errorf("resolve content: %w", err)
	}
	return meta, nil
}

// Exists reports whether ref resolves to a live entity.
func (s *Service) Exists(ctx context.Context, ref domain.EntityReference) (bool, error) {
	if err := ref.Validate(); err != nil {
		return false, err
	}

	ok, err := s.items.Exists(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("check content: %w", err)
	}
	return ok, nil
}

// Ensure returns nil when ref resolves to a live entity and
// domain.ErrUnknownEntity otherwise.
func (s *Service) Ensure(ctx context.Context, ref domain.EntityReference) error {
	ok, err := s.Exists(ctx, ref)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", ref, domain.ErrUnknownEntity)
	}
	return nil
}
