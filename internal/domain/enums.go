package domain

import "strings"

// EntityKind identifies the type of content an interaction targets.
type EntityKind string

const (
	EntityKindPost     EntityKind = "POST"
	EntityKindComment  EntityKind = "COMMENT"
	EntityKindQuestion EntityKind = "QUESTION"
	EntityKindAnswer   EntityKind = "ANSWER"
	EntityKindEvent    EntityKind = "EVENT"
	EntityKindGuide    EntityKind = "GUIDE"
	EntityKindStory    EntityKind = "STORY"
	EntityKindReview   EntityKind = "REVIEW"
	EntityKindGroup    EntityKind = "GROUP"
	EntityKindNews     EntityKind = "NEWS"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindPost, EntityKindComment, EntityKindQuestion, EntityKindAnswer,
		EntityKindEvent, EntityKindGuide, EntityKindStory, EntityKindReview,
		EntityKindGroup, EntityKindNews:
		return true
	}
	return false
}

// Slug returns the lower-case path segment used in URLs ("post", "news", ...).
func (k EntityKind) Slug() string { return strings.ToLower(string(k)) }

// ParseEntityKind accepts either the canonical upper-case value or its slug.
func ParseEntityKind(s string) (EntityKind, bool) {
	k := EntityKind(strings.ToUpper(strings.TrimSpace(s)))
	return k, k.IsValid()
}

// ReactionKind is the emotion a user attaches to content.
type ReactionKind string

const (
	ReactionKindLike      ReactionKind = "LIKE"
	ReactionKindLove      ReactionKind = "LOVE"
	ReactionKindHaha      ReactionKind = "HAHA"
	ReactionKindWow       ReactionKind = "WOW"
	ReactionKindSad       ReactionKind = "SAD"
	ReactionKindAngry     ReactionKind = "ANGRY"
	ReactionKindCelebrate ReactionKind = "CELEBRATE"
	ReactionKindSupport   ReactionKind = "SUPPORT"
)

func (r ReactionKind) String() string { return string(r) }

func (r ReactionKind) IsValid() bool {
	switch r {
	case ReactionKindLike, ReactionKindLove, ReactionKindHaha, ReactionKindWow,
		ReactionKindSad, ReactionKindAngry, ReactionKindCelebrate, ReactionKindSupport:
		return true
	}
	return false
}

// VoteKind is the direction of a vote.
type VoteKind string

const (
	VoteKindUp   VoteKind = "UP"
	VoteKindDown VoteKind = "DOWN"
)

func (v VoteKind) String() string { return string(v) }

func (v VoteKind) IsValid() bool {
	return v == VoteKindUp || v == VoteKindDown
}

// Weight is the vote's contribution to the score: +1 for up, -1 for down.
func (v VoteKind) Weight() int {
	switch v {
	case VoteKindUp:
		return 1
	case VoteKindDown:
		return -1
	}
	return 0
}

// ShareKind describes the channel a share went through.
type ShareKind string

const (
	ShareKindInternal   ShareKind = "INTERNAL"
	ShareKindExternal   ShareKind = "EXTERNAL"
	ShareKindDirectLink ShareKind = "DIRECT_LINK"
	ShareKindEmail      ShareKind = "EMAIL"
	ShareKindSocial     ShareKind = "SOCIAL"
)

func (s ShareKind) String() string { return string(s) }

func (s ShareKind) IsValid() bool {
	switch s {
	case ShareKindInternal, ShareKindExternal, ShareKindDirectLink, ShareKindEmail, ShareKindSocial:
		return true
	}
	return false
}

// MutationOutcome reports what a create-or-update operation did.
type MutationOutcome string

const (
	// OutcomeCreated means a new live record was inserted.
	OutcomeCreated MutationOutcome = "CREATED"
	// OutcomeUnchanged means a live record with the same kind already existed.
	OutcomeUnchanged MutationOutcome = "UNCHANGED"
	// OutcomeChanged means the live record's kind was updated in place.
	OutcomeChanged MutationOutcome = "CHANGED"
)

func (o MutationOutcome) String() string { return string(o) }

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
