package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/content"
	"github.com/heartmarshall/community-backend/internal/transport/middleware"
)

type contentService interface {
	Register(ctx context.Context, input content.RegisterInput) (*domain.ContentItem, error)
	Retire(ctx context.Context, ref domain.EntityReference) error
}

// EntityHandler serves the admin endpoints that maintain the content
// registry interactions resolve against.
type EntityHandler struct {
	svc contentService
	log *slog.Logger
}

// NewEntityHandler creates an EntityHandler.
func NewEntityHandler(svc contentService, logger *slog.Logger) *EntityHandler {
	return &EntityHandler{svc: svc, log: logger.With("handler", "entity")}
}

type registerRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type contentItemResponse struct {
	Entity      refResponse `json:"entity"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

// Register handles PUT /entities/{kind}/{id}.
func (h *EntityHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.svc.Register(r.Context(), content.RegisterInput{
		Ref:         ref,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, contentItemResponse{
		Entity:      toRef(item.Ref),
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	})
}

// Retire handles DELETE /entities/{kind}/{id}.
func (h *EntityHandler) Retire(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	ref, ok := entityRef(w, r)
	if !ok {
		return
	}

	if err := h.svc.Retire(r.Context(), ref); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
