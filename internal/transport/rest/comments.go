package rest

import (
	"context"
	"iter"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/metrics"
	"github.com/heartmarshall/community-backend/internal/service/comment"
)

const (
	defaultRepliesLimit = 50
	maxRepliesLimit     = 500
)

type commentService interface {
	Add(ctx context.Context, input comment.AddInput) (*domain.Comment, error)
	Edit(ctx context.Context, input comment.EditInput) (*domain.Comment, error)
	Delete(ctx context.Context, input comment.ActInput) error
	Restore(ctx context.Context, input comment.ActInput) (*domain.Comment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	RepliesOf(ctx context.Context, parentID uuid.UUID) iter.Seq2[domain.Comment, error]
	CommentsFor(ctx context.Context, input comment.ListInput) ([]domain.Comment, int, error)
}

// CommentHandler serves comment endpoints.
type CommentHandler struct {
	svc     commentService
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewCommentHandler creates a CommentHandler. m may be nil.
func NewCommentHandler(svc commentService, m *metrics.Metrics, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, metrics: m, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parentId"`
}

type editCommentRequest struct {
	Content string `json:"content"`
}

type repliesResponse struct {
	Items   []commentResponse `json:"items"`
	HasMore bool              `json:"hasMore"`
}

// List handles GET /entities/{kind}/{id}/comments?limit=&offset=&includeDeleted=.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	items, total, err := h.svc.CommentsFor(r.Context(), comment.ListInput{
		Ref:            ref,
		Limit:          queryInt(r, "limit", comment.DefaultListLimit),
		Offset:         queryInt(r, "offset", 0),
		IncludeDeleted: queryBool(r, "includeDeleted"),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := listResponse[commentResponse]{Items: make([]commentResponse, 0, len(items)), Total: total}
	for _, item := range items {
		resp.Items = append(resp.Items, toCommentResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /entities/{kind}/{id}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}
	var req addCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Add(r.Context(), comment.AddInput{
		Ref:      ref,
		AuthorID: userID,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("comment", string(domain.OutcomeCreated))

	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

// Get handles GET /comments/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// Edit handles PATCH /comments/{id}.
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req editCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Edit(r.Context(), comment.EditInput{CommentID: id, EditorID: userID, Content: req.Content})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("comment", string(domain.OutcomeChanged))

	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// Delete handles DELETE /comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), comment.ActInput{CommentID: id, ActorID: userID}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.metrics.Interaction("comment", "REMOVED")

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /comments/{id}/restore.
func (h *CommentHandler) Restore(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.Restore(r.Context(), comment.ActInput{CommentID: id, ActorID: userID})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// Replies handles GET /comments/{id}/replies?limit=.
func (h *CommentHandler) Replies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit := queryInt(r, "limit", defaultRepliesLimit)
	if limit <= 0 || limit > maxRepliesLimit {
		writeError(w, http.StatusBadRequest, "limit out of range")
		return
	}

	if _, err := h.svc.Get(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := repliesResponse{Items: make([]commentResponse, 0)}
	for c, err := range h.svc.RepliesOf(r.Context(), id) {
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		if len(resp.Items) == limit {
			resp.HasMore = true
			break
		}
		resp.Items = append(resp.Items, toCommentResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}
