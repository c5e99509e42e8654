package rest

import (
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/community-backend/internal/domain"
)

type refResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type reactionResponse struct {
	ID        string      `json:"id"`
	Entity    refResponse `json:"entity"`
	UserID    string      `json:"userId"`
	Kind      string      `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
}

type voteResponse struct {
	ID        string      `json:"id"`
	Entity    refResponse `json:"entity"`
	UserID    string      `json:"userId"`
	Kind      string      `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
}

type bookmarkResponse struct {
	ID        string      `json:"id"`
	Entity    refResponse `json:"entity"`
	CreatedAt time.Time   `json:"createdAt"`
}

type commentResponse struct {
	ID        string      `json:"id"`
	Entity    refResponse `json:"entity"`
	AuthorID  string      `json:"authorId"`
	Content   string      `json:"content"`
	ParentID  *string     `json:"parentId,omitempty"`
	IsDeleted bool        `json:"isDeleted"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time  `json:"deletedAt,omitempty"`
}

type shareResponse struct {
	ID        string      `json:"id"`
	Entity    refResponse `json:"entity"`
	Kind      string      `json:"kind"`
	Platform  *string     `json:"platform,omitempty"`
	Message   *string     `json:"message,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type metadataResponse struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type summaryResponse struct {
	Entity    refResponse    `json:"entity"`
	Reactions reactionCounts `json:"reactions"`
	Comments  commentCounts  `json:"comments"`
	Shares    shareCounts    `json:"shares"`
	Votes     voteCounts     `json:"votes"`
	Bookmarks int            `json:"bookmarks"`
	Views     int            `json:"views"`
	Viewer    *viewerState   `json:"viewer,omitempty"`
}

type reactionCounts struct {
	Total  int            `json:"total"`
	ByKind map[string]int `json:"byKind"`
}

type commentCounts struct {
	TopLevel int `json:"topLevel"`
	Total    int `json:"total"`
}

type shareCounts struct {
	Total      int            `json:"total"`
	ByKind     map[string]int `json:"byKind"`
	ByPlatform map[string]int `json:"byPlatform"`
}

type voteCounts struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Score int `json:"score"`
}

type viewerState struct {
	Reaction     *string `json:"reaction"`
	Vote         *string `json:"vote"`
	IsBookmarked bool    `json:"isBookmarked"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func toRef(ref domain.EntityReference) refResponse {
	return refResponse{Kind: ref.Kind.Slug(), ID: ref.ID.String()}
}

func toReactionResponse(r domain.Reaction) reactionResponse {
	return reactionResponse{
		ID:        r.ID.String(),
		Entity:    toRef(r.Ref),
		UserID:    r.UserID.String(),
		Kind:      string(r.Kind),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toVoteResponse(v domain.Vote) voteResponse {
	return voteResponse{
		ID:        v.ID.String(),
		Entity:    toRef(v.Ref),
		UserID:    v.UserID.String(),
		Kind:      string(v.Kind),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toBookmarkResponse(b domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{ID: b.ID.String(), Entity: toRef(b.Ref), CreatedAt: b.CreatedAt}
}

func toCommentResponse(c domain.Comment) commentResponse {
	resp := commentResponse{
		ID:        c.ID.String(),
		Entity:    toRef(c.Ref),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
	if c.ParentID != nil {
		parent := c.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}

func toShareResponse(s domain.Share) shareResponse {
	return shareResponse{
		ID:        s.ID.String(),
		Entity:    toRef(s.Ref),
		Kind:      string(s.Kind),
		Platform:  s.Platform,
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
	}
}

func toSummaryResponse(s *domain.InteractionSummary) summaryResponse {
	resp := summaryResponse{
		Entity: toRef(s.Ref),
		Reactions: reactionCounts{
			Total:  s.Reactions.Total,
			ByKind: lo.MapKeys(s.Reactions.Counts, func(_ int, k domain.ReactionKind) string { return string(k) }),
		},
		Comments: commentCounts{TopLevel: s.Comments.TopLevel, Total: s.Comments.Total},
		Shares: shareCounts{
			Total:      s.Shares.Total,
			ByKind:     lo.MapKeys(s.Shares.ByKind, func(_ int, k domain.ShareKind) string { return string(k) }),
			ByPlatform: lo.Assign(map[string]int{}, s.Shares.ByPlatform),
		},
		Votes:     voteCounts{Up: s.Votes.Up, Down: s.Votes.Down, Score: s.Votes.Score},
		Bookmarks: s.BookmarkCount,
		Views:     s.ViewCount,
	}
	if s.Viewer != nil {
		resp.Viewer = &viewerState{IsBookmarked: s.Viewer.IsBookmarked}
		if s.Viewer.Reaction != nil {
			kind := string(*s.Viewer.Reaction)
			resp.Viewer.Reaction = &kind
		}
		if s.Viewer.Vote != nil {
			kind := string(*s.Viewer.Vote)
			resp.Viewer.Vote = &kind
		}
	}
	return resp
}
