package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/metrics"
	"github.com/heartmarshall/community-backend/internal/service/bookmark"
	"github.com/heartmarshall/community-backend/internal/service/reaction"
	"github.com/heartmarshall/community-backend/internal/service/share"
	"github.com/heartmarshall/community-backend/internal/service/view"
	"github.com/heartmarshall/community-backend/internal/service/vote"
	"github.com/heartmarshall/community-backend/pkg/ctxutil"
)

type reactionService interface {
	AddOrUpdate(ctx context.Context, input reaction.AddOrUpdateInput) (*domain.Reaction, domain.MutationOutcome, error)
	Remove(ctx context.Context, input reaction.RemoveInput) error
	ListFor(ctx context.Context, input reaction.ListInput) ([]domain.Reaction, int, error)
}

type voteService interface {
	Cast(ctx context.Context, input vote.CastInput) (*domain.Vote, domain.MutationOutcome, error)
	Retract(ctx context.Context, input vote.RetractInput) error
}

type bookmarkService interface {
	Set(ctx context.Context, input bookmark.SetInput) (bool, error)
	ListForUser(ctx context.Context, input bookmark.ListForUserInput) ([]domain.Bookmark, int, error)
}

type viewService interface {
	RecordView(ctx context.Context, input view.RecordViewInput) (bool, error)
}

type shareService interface {
	Record(ctx context.Context, input share.RecordInput) (*share.Result, error)
}

type summaryService interface {
	SummaryFor(ctx context.Context, ref domain.EntityReference, viewerID *uuid.UUID) (*domain.InteractionSummary, error)
}

// InteractionServices groups the services behind InteractionHandler.
type InteractionServices struct {
	Reactions reactionService
	Votes     voteService
	Bookmarks bookmarkService
	Views     viewService
	Shares    shareService
	Summaries summaryService
}

// InteractionHandler serves the per-entity interaction endpoints.
type InteractionHandler struct {
	svc     InteractionServices
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewInteractionHandler creates an InteractionHandler. m may be nil.
func NewInteractionHandler(svc InteractionServices, m *metrics.Metrics, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{svc: svc, metrics: m, log: logger.With("handler", "interaction")}
}

type mutationResponse[T any] struct {
	Item    T      `json:"item"`
	Outcome string `json:"outcome"`
}

// Summary handles GET /entities/{kind}/{id}/summary.
func (h *InteractionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Summaries.SummaryFor(r.Context(), ref, ctxutil.UserIDPtrFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// ---------------------------------------------------------------------------
// Reactions
// ---------------------------------------------------------------------------

type reactionRequest struct {
	Kind string `json:"kind"`
}

// PutReaction handles PUT /entities/{kind}/{id}/reaction.
func (h *InteractionHandler) PutReaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}
	var req reactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, outcome, err := h.svc.Reactions.AddOrUpdate(r.Context(), reaction.AddOrUpdateInput{
		Ref:    ref,
		UserID: userID,
		Kind:   domain.ReactionKind(req.Kind),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("reaction", string(outcome))

	status := http.StatusOK
	if outcome == domain.OutcomeCreated {
		status = http.StatusCreated
	}
	writeJSON(w, status, mutationResponse[reactionResponse]{Item: toReactionResponse(*rec), Outcome: string(outcome)})
}

// DeleteReaction handles DELETE /entities/{kind}/{id}/reaction.
func (h *InteractionHandler) DeleteReaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	if err := h.svc.Reactions.Remove(r.Context(), reaction.RemoveInput{Ref: ref, UserID: userID}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("reaction", "REMOVED")

	w.WriteHeader(http.StatusNoContent)
}

// ListReactions handles GET /entities/{kind}/{id}/reactions?kind=&limit=&offset=.
func (h *InteractionHandler) ListReactions(w http.ResponseWriter, r *http.Request) {
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	input := reaction.ListInput{
		Ref:    ref,
		Limit:  queryInt(r, "limit", reaction.DefaultListLimit),
		Offset: queryInt(r, "offset", 0),
	}
	if k := r.URL.Query().Get("kind"); k != "" {
		kind := domain.ReactionKind(k)
		input.Kind = &kind
	}

	items, total, err := h.svc.Reactions.ListFor(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := listResponse[reactionResponse]{Items: make([]reactionResponse, 0, len(items)), Total: total}
	for _, item := range items {
		resp.Items = append(resp.Items, toReactionResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Votes
// ---------------------------------------------------------------------------

type voteRequest struct {
	Kind string `json:"kind"`
}

// PutVote handles PUT /entities/{kind}/{id}/vote.
func (h *InteractionHandler) PutVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}
	var req voteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, outcome, err := h.svc.Votes.Cast(r.Context(), vote.CastInput{
		Ref:    ref,
		UserID: userID,
		Kind:   domain.VoteKind(req.Kind),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("vote", string(outcome))

	status := http.StatusOK
	if outcome == domain.OutcomeCreated {
		status = http.StatusCreated
	}
	writeJSON(w, status, mutationResponse[voteResponse]{Item: toVoteResponse(*v), Outcome: string(outcome)})
}

// DeleteVote handles DELETE /entities/{kind}/{id}/vote.
func (h *InteractionHandler) DeleteVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	if err := h.svc.Votes.Retract(r.Context(), vote.RetractInput{Ref: ref, UserID: userID}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("vote", "REMOVED")

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Bookmarks
// ---------------------------------------------------------------------------

type bookmarkStateResponse struct {
	Bookmarked bool `json:"bookmarked"`
	Changed    bool `json:"changed"`
}

// PutBookmark handles PUT /entities/{kind}/{id}/bookmark.
func (h *InteractionHandler) PutBookmark(w http.ResponseWriter, r *http.Request) {
	h.setBookmark(w, r, true)
}

// DeleteBookmark handles DELETE /entities/{kind}/{id}/bookmark.
func (h *InteractionHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	h.setBookmark(w, r, false)
}

func (h *InteractionHandler) setBookmark(w http.ResponseWriter, r *http.Request, on bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	changed, err := h.svc.Bookmarks.Set(r.Context(), bookmark.SetInput{Ref: ref, UserID: userID, On: on})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if changed {
		outcome := "REMOVED"
		if on {
			outcome = string(domain.OutcomeCreated)
		}
		h.metrics.Interaction("bookmark", outcome)
	}

	writeJSON(w, http.StatusOK, bookmarkStateResponse{Bookmarked: on, Changed: changed})
}

// MyBookmarks handles GET /me/bookmarks?kind=&limit=&offset=.
func (h *InteractionHandler) MyBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	input := bookmark.ListForUserInput{
		UserID: userID,
		Limit:  queryInt(r, "limit", bookmark.DefaultListLimit),
		Offset: queryInt(r, "offset", 0),
	}
	if k := r.URL.Query().Get("kind"); k != "" {
		kind, ok := domain.ParseEntityKind(k)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown entity kind")
			return
		}
		input.Kind = &kind
	}

	items, total, err := h.svc.Bookmarks.ListForUser(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := listResponse[bookmarkResponse]{Items: make([]bookmarkResponse, 0, len(items)), Total: total}
	for _, item := range items {
		resp.Items = append(resp.Items, toBookmarkResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Views and shares
// ---------------------------------------------------------------------------

// RecordView handles POST /entities/{kind}/{id}/views. Anonymous callers
// are welcome.
func (h *InteractionHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	counted, err := h.svc.Views.RecordView(r.Context(), view.RecordViewInput{
		Ref:       ref,
		UserID:    ctxutil.UserIDPtrFromCtx(r.Context()),
		IPAddress: optionalString(ctxutil.ClientIPFromCtx(r.Context())),
		UserAgent: optionalString(r.UserAgent()),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.View(ref.Kind.String(), counted)

	writeJSON(w, http.StatusOK, map[string]bool{"counted": counted})
}

type shareRequest struct {
	Kind     string  `json:"kind"`
	Platform *string `json:"platform"`
	Message  *string `json:"message"`
}

type shareResultResponse struct {
	Share    shareResponse    `json:"share"`
	URL      string           `json:"url"`
	Metadata metadataResponse `json:"metadata"`
}

// RecordShare handles POST /entities/{kind}/{id}/shares.
func (h *InteractionHandler) RecordShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}
	var req shareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Shares.Record(r.Context(), share.RecordInput{
		Ref:      ref,
		UserID:   userID,
		Kind:     domain.ShareKind(req.Kind),
		Platform: req.Platform,
		Message:  req.Message,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("share", string(domain.OutcomeCreated))

	writeJSON(w, http.StatusCreated, shareResultResponse{
		Share: toShareResponse(*result.Share),
		URL:   result.URL,
		Metadata: metadataResponse{
			Title:       result.Metadata.Title,
			Description: result.Metadata.Description,
			ImageURL:    result.Metadata.ImageURL,
		},
	})
}
