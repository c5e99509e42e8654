package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/ctxutil"
)

//go:generate moq -out reaction_service_mock_test.go -pkg rest . reactionService
//go:generate moq -out vote_service_mock_test.go -pkg rest . voteService
//go:generate moq -out bookmark_service_mock_test.go -pkg rest . bookmarkService
//go:generate moq -out view_service_mock_test.go -pkg rest . viewService
//go:generate moq -out share_service_mock_test.go -pkg rest . shareService
//go:generate moq -out summary_service_mock_test.go -pkg rest . summaryService
//go:generate moq -out comment_service_mock_test.go -pkg rest . commentService
//go:generate moq -out content_service_mock_test.go -pkg rest . contentService

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve routes req through a ServeMux so path values resolve.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(buf)
	}
	return httptest.NewRequest(method, target, r)
}

func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(ctxutil.WithUserID(req.Context(), userID))
}

func asAdmin(req *http.Request) *http.Request {
	ctx := ctxutil.WithUserID(req.Context(), uuid.New())
	ctx = ctxutil.WithUserRole(ctx, domain.UserRoleAdmin.String())
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func entityPath(ref domain.EntityReference, suffix string) string {
	return "/entities/" + ref.Kind.Slug() + "/" + ref.ID.String() + suffix
}
