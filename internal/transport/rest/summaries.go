package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/interaction"
	"github.com/heartmarshall/community-backend/internal/transport/dataloader"
)

// SummaryBatchHandler serves the batch summary endpoint used by feeds. It
// reads through the per-request summary loader.
type SummaryBatchHandler struct {
	log *slog.Logger
}

// NewSummaryBatchHandler creates a SummaryBatchHandler.
func NewSummaryBatchHandler(logger *slog.Logger) *SummaryBatchHandler {
	return &SummaryBatchHandler{log: logger.With("handler", "summaries")}
}

type batchRequest struct {
	Entities []refResponse `json:"entities"`
}

type batchResponse struct {
	Items   []summaryResponse `json:"items"`
	Missing []refResponse     `json:"missing"`
}

// Batch handles POST /summaries. Unknown entities are reported under
// "missing" instead of failing the whole batch.
func (h *SummaryBatchHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Entities) == 0 {
		writeError(w, http.StatusBadRequest, "entities required")
		return
	}
	if len(req.Entities) > interaction.MaxBatchSize {
		writeError(w, http.StatusBadRequest, "too many entities")
		return
	}

	refs := make([]domain.EntityReference, 0, len(req.Entities))
	for _, e := range req.Entities {
		kind, ok := domain.ParseEntityKind(e.Kind)
		id, err := uuid.Parse(e.ID)
		if !ok || err != nil {
			writeError(w, http.StatusBadRequest, "invalid entity reference")
			return
		}
		refs = append(refs, domain.EntityReference{ID: id, Kind: kind})
	}

	loader := dataloader.FromContext(r.Context()).SummaryByRef
	thunks := make([]func() (*domain.InteractionSummary, error), len(refs))
	for i, ref := range refs {
		thunks[i] = loader.Load(r.Context(), ref)
	}

	resp := batchResponse{Items: make([]summaryResponse, 0, len(refs)), Missing: make([]refResponse, 0)}
	for i, thunk := range thunks {
		summary, err := thunk()
		switch {
		case errors.Is(err, domain.ErrUnknownEntity):
			resp.Missing = append(resp.Missing, toRef(refs[i]))
		case err != nil:
			writeServiceError(w, r, h.log, err)
			return
		default:
			resp.Items = append(resp.Items, toSummaryResponse(summary))
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
