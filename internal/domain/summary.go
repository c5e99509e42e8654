package domain

import "github.com/google/uuid"

// ReactionSummary holds per-kind reaction counts for an entity.
type ReactionSummary struct {
	Counts     map[ReactionKind]int
	Total      int
	ViewerKind *ReactionKind
}

// CommentCounts holds comment totals. Total includes replies.
type CommentCounts struct {
	TopLevel int
	Total    int
}

// ShareSummary holds share totals with per-kind and per-platform breakdowns.
type ShareSummary struct {
	Total      int
	ByKind     map[ShareKind]int
	ByPlatform map[string]int
}

// VoteScore holds raw vote counts and the net score (Up - Down).
type VoteScore struct {
	Up    int
	Down  int
	Score int
}

// NewVoteScore computes the score from raw counts.
func NewVoteScore(up, down int) VoteScore {
	return VoteScore{Up: up, Down: down, Score: up - down}
}

// ViewerState is the calling user's own interaction state.
type ViewerState struct {
	UserID       uuid.UUID
	Reaction     *ReactionKind
	Vote         *VoteKind
	IsBookmarked bool
}

// HasReacted reports whether the viewer has a live reaction.
func (v *ViewerState) HasReacted() bool { return v.Reaction != nil }

// HasVoted reports whether the viewer has a live vote.
func (v *ViewerState) HasVoted() bool { return v.Vote != nil }

// InteractionSummary is the aggregated interaction state of one entity,
// optionally personalised to a viewer.
type InteractionSummary struct {
	Ref           EntityReference
	Reactions     ReactionSummary
	Comments      CommentCounts
	Shares        ShareSummary
	Votes         VoteScore
	BookmarkCount int
	ViewCount     int
	Viewer        *ViewerState
}

// ShareBucket is the live share count for one (kind, platform) pair.
type ShareBucket struct {
	Kind     ShareKind
	Platform *string
	Count    int
}
