// Package share implements the share store. Every share is recorded; a user
// may share the same entity many times.
package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

type shareRepo interface {
	Create(ctx context.Context, s *domain.Share) (*domain.Share, error)
	Breakdown(ctx context.Context, ref domain.EntityReference) ([]domain.ShareBucket, error)
}

type metadataResolver interface {
	Resolve(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error)
}

const (
	maxPlatformLength = 50
	maxMessageLength  = 1000
)

// Service provides share operations.
type Service struct {
	shares   shareRepo
	metadata metadataResolver
	clock    clock.Clock
	log      *slog.Logger
	baseURL  string
}

// NewService creates a new share service. baseURL is the public origin
// share links are built on.
func NewService(
	log *slog.Logger,
	shares shareRepo,
	metadata metadataResolver,
	clk clock.Clock,
	baseURL string,
) *Service {
	return &Service{
		shares:   shares,
		metadata: metadata,
		clock:    clk,
		log:      log.With("service", "share"),
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// RecordInput holds the parameters for recording a share.
type RecordInput struct {
	Ref      domain.EntityReference
	UserID   uuid.UUID
	Kind     domain.ShareKind
	Platform *string
	Message  *string
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError
	if err := i.Ref.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if i.Platform != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Platform)) > maxPlatformLength {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "max 50 characters"})
	}
	if i.Kind == domain.ShareKindSocial && (i.Platform == nil || strings.TrimSpace(*i.Platform) == "") {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "required for social shares"})
	}
	if i.Message != nil && utf8.RuneCountInString(*i.Message) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 1000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Result is a recorded share with its public link and display metadata.
type Result struct {
	Share    *domain.Share
	URL      string
	Metadata domain.ContentMetadata
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Record stores a share and returns the entity's share link with display
// metadata. Returns domain.ErrUnknownEntity if ref does not resolve.
func (s *Service) Record(ctx context.Context, input RecordInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meta, err := s.metadata.Resolve(ctx, input.Ref)
	if err != nil {
		return nil, err
	}

	platform := trimOrNil(input.Platform)
	if platform != nil {
		lower := strings.ToLower(*platform)
		platform = &lower
	}

	created, err := s.shares.Create(ctx, &domain.Share{
		ID:       uuid.New(),
		Ref:      input.Ref,
		UserID:   input.UserID,
		Kind:     input.Kind,
		Platform: platform,
		Message:  trimOrNil(input.Message),
		Audit:    domain.NewAudit(domain.UserActor(input.UserID), s.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("create share: %w", err)
	}

	s.log.InfoContext(ctx, "share recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("entity_id", input.Ref.ID.String()),
		slog.String("entity_kind", input.Ref.Kind.String()),
		slog.String("kind", input.Kind.String()),
	)

	return &Result{Share: created, URL: s.URLFor(input.Ref), Metadata: meta}, nil
}

// URLFor returns the public link of an entity. It depends only on ref.
func (s *Service) URLFor(ref domain.EntityReference) string {
	return s.baseURL + "/" + ref.Kind.Slug() + "/" + ref.ID.String()
}

// SummaryFor returns the live share total with per-kind and per-platform
// breakdowns. Shares without a platform only count toward ByKind.
func (s *Service) SummaryFor(ctx context.Context, ref domain.EntityReference) (domain.ShareSummary, error) {
	if err := ref.Validate(); err != nil {
		return domain.ShareSummary{}, err
	}

	buckets, err := s.shares.Breakdown(ctx, ref)
	if err != nil {
		return domain.ShareSummary{}, fmt.Errorf("share breakdown: %w", err)
	}

	summary := domain.ShareSummary{
		ByKind:     make(map[domain.ShareKind]int),
		ByPlatform: make(map[string]int),
	}
	for _, b := range buckets {
		summary.Total += b.Count
		summary.ByKind[b.Kind] += b.Count
		if b.Platform != nil {
			summary.ByPlatform[*b.Platform] += b.Count
		}
	}
	return summary, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
