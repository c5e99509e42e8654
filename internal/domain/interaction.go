package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is a user's single live reaction to an entity.
type Reaction struct {
	ID     uuid.UUID
	Ref    EntityReference
	UserID uuid.UUID
	Kind   ReactionKind
	Audit
}

// Comment is a top-level comment or a reply. Replies point at a top-level
// comment; nesting never goes deeper than one level.
type Comment struct {
	ID       uuid.UUID
	Ref      EntityReference
	AuthorID uuid.UUID
	Content  string
	ParentID *uuid.UUID
	Audit
}

// IsReply reports whether the comment is a reply.
func (c Comment) IsReply() bool {
	return c.ParentID != nil
}

// Redacted returns a copy safe to display: a soft-deleted comment keeps its
// identity and parent linkage but loses its content.
func (c Comment) Redacted() Comment {
	if c.IsDeleted {
		c.Content = ""
	}
	return c
}

// Share records one act of sharing. A user may share the same entity many times.
type Share struct {
	ID       uuid.UUID
	Ref      EntityReference
	UserID   uuid.UUID
	Kind     ShareKind
	Platform *string
	Message  *string
	Audit
}

// Vote is a user's single live up/down vote on an entity.
type Vote struct {
	ID     uuid.UUID
	Ref    EntityReference
	UserID uuid.UUID
	Kind   VoteKind
	Audit
}

// Bookmark marks an entity as saved by a user.
type Bookmark struct {
	ID     uuid.UUID
	Ref    EntityReference
	UserID uuid.UUID
	Audit
}

// ViewEvent is a raw view. Counted is false for views that fell inside the
// dedup window of an earlier counted view by the same viewer.
type ViewEvent struct {
	ID         uuid.UUID
	Ref        EntityReference
	UserID     *uuid.UUID
	IPAddress  *string
	UserAgent  *string
	ViewerKey  string
	Counted    bool
	OccurredAt time.Time
}

// Cursor is a keyset position in a (created_at, id) ordered listing.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorOf returns the keyset position of c.
func (c Comment) CursorOf() Cursor {
	return Cursor{CreatedAt: c.CreatedAt, ID: c.ID}
}
