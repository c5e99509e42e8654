package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

const maxUserAgentLength = 512

// RecordViewInput describes one view.
type RecordViewInput struct {
	Ref       domain.EntityReference
	UserID    *uuid.UUID
	IPAddress *string
	UserAgent *string
}

// RecordView stores a view event and reports whether it was counted. A
// repeat view inside the dedup window is stored uncounted; it is never an
// error. Views that carry neither a user nor an IP address cannot be
// deduplicated and are always counted.
func (s *Service) RecordView(ctx context.Context, input RecordViewInput) (bool, error) {
	if err := input.Ref.Validate(); err != nil {
		return false, err
	}

	if err := s.entities.Ensure(ctx, input.Ref); err != nil {
		return false, err
	}

	event := &domain.ViewEvent{
		ID:         uuid.New(),
		Ref:        input.Ref,
		UserID:     input.UserID,
		IPAddress:  trimOrNil(input.IPAddress),
		UserAgent:  truncate(trimOrNil(input.UserAgent), maxUserAgentLength),
		OccurredAt: s.clock.Now(),
	}
	event.ViewerKey = ViewerKey(event.UserID, event.IPAddress)

	var err error
	switch {
	case event.ViewerKey == "":
		event.ViewerKey = "anon:" + event.ID.String()
		event.Counted = true
		err = s.views.Insert(ctx, event)
	case s.gate != nil:
		err = s.recordGated(ctx, event)
	default:
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			return s.recordLocked(txCtx, event)
		})
	}
	if err != nil {
		return false, err
	}

	if event.Counted {
		s.log.DebugContext(ctx, "view counted",
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
		)
	} else {
		s.log.DebugContext(ctx, "view deduplicated",
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
		)
	}

	return event.Counted, nil
}

// recordLocked decides under a per-viewer advisory lock so two concurrent
// first views cannot both be counted.
func (s *Service) recordLocked(ctx context.Context, event *domain.ViewEvent) error {
	if err := s.views.LockViewer(ctx, event.Ref, event.ViewerKey); err != nil {
		return fmt.Errorf("lock viewer: %w", err)
	}

	last, err := s.views.LastCountedAt(ctx, event.Ref, event.ViewerKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		event.Counted = true
	case err != nil:
		return fmt.Errorf("last counted view: %w", err)
	default:
		event.Counted = !event.OccurredAt.Before(last.Add(s.window))
	}

	if err := s.views.Insert(ctx, event); err != nil {
		return fmt.Errorf("insert view: %w", err)
	}
	return nil
}

// recordGated lets the gate decide. An admission whose event could not be
// stored is released so the viewer's next view in the window still counts.
func (s *Service) recordGated(ctx context.Context, event *domain.ViewEvent) error {
	admitted, err := s.gate.Admit(ctx, event.Ref, event.ViewerKey, event.OccurredAt, s.window)
	if err != nil {
		return fmt.Errorf("view gate: %w", err)
	}
	event.Counted = admitted

	if err := s.views.Insert(ctx, event); err != nil {
		if admitted {
			if rerr := s.gate.Release(context.WithoutCancel(ctx), event.Ref, event.ViewerKey, event.OccurredAt); rerr != nil {
				s.log.WarnContext(ctx, "release view gate",
					slog.String("entity_id", event.Ref.ID.String()),
					slog.String("error", rerr.Error()),
				)
			}
		}
		return fmt.Errorf("insert view: %w", err)
	}
	return nil
}

// CountFor returns the number of counted views of ref.
func (s *Service) CountFor(ctx context.Context, ref domain.EntityReference) (int, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}

	n, err := s.views.Count(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("count views: %w", err)
	}
	return n, nil
}

// trimOrNil also drops invalid UTF-8, which PostgreSQL text columns reject.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(strings.ToValidUTF8(*s, ""))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s *string, n int) *string {
	if s == nil || len(*s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart((*s)[n]) {
		n--
	}
	cut := (*s)[:n]
	return &cut
}
