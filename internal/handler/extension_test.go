package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/themepick/api/internal/model"
)

// ============================================================================
// Mock ExtensionUpserter
// ============================================================================

type mockExtensionUpserter struct {
	upsertFunc func(ctx context.Context, ext *model.Extension) (string, error)
}

func (m *mockExtensionUpserter) Upsert(ctx context.Context, ext *model.Extension) (string, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, ext)
	}
	return "", nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func upsertRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	return httptest.NewRequest(http.MethodPut, "/v1/extensions", bytes.NewReader(raw))
}

func validUpsertBody() model.UpsertExtensionRequest {
	return model.UpsertExtensionRequest{
		ID:          "ext-1",
		ExtensionID: "pub.ext",
		DisplayName: "Pub Themes",
	}
}

// ============================================================================
// Upsert Tests
// ============================================================================

func TestExtensionUpsert_HappyPath_Returns200WithID(t *testing.T) {
	t.Parallel()

	h := NewExtensionHandler(&mockExtensionUpserter{
		upsertFunc: func(ctx context.Context, ext *model.Extension) (string, error) {
			return ext.ID, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Upsert(rec, upsertRequest(t, validUpsertBody()))

	// A successful upsert is a 200, never a 404: success, store failure and
	// invalid input are the only three outcomes of this endpoint.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data UpsertResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID != "ext-1" {
		t.Errorf("expected id ext-1 in response, got %q", resp.Data.ID)
	}
}

func TestExtensionUpsert_MissingFields_Returns422(t *testing.T) {
	t.Parallel()

	h := NewExtensionHandler(&mockExtensionUpserter{})

	rec := httptest.NewRecorder()
	h.Upsert(rec, upsertRequest(t, model.UpsertExtensionRequest{ID: "ext-1"}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for missing fields, got %d", rec.Code)
	}
}

func TestExtensionUpsert_MalformedBody_Returns422(t *testing.T) {
	t.Parallel()

	h := NewExtensionHandler(&mockExtensionUpserter{})

	req := httptest.NewRequest(http.MethodPut, "/v1/extensions", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Upsert(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for malformed body, got %d", rec.Code)
	}
}

func TestExtensionUpsert_StoreFailure_Returns500(t *testing.T) {
	t.Parallel()

	h := NewExtensionHandler(&mockExtensionUpserter{
		upsertFunc: func(ctx context.Context, ext *model.Extension) (string, error) {
			return "", errors.New("write conflict")
		},
	})

	rec := httptest.NewRecorder()
	h.Upsert(rec, upsertRequest(t, validUpsertBody()))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for store failure, got %d", rec.Code)
	}
}

func TestExtensionUpsert_NeverReturns404(t *testing.T) {
	t.Parallel()

	// Regression: exercise every outcome class and assert none maps to 404.
	cases := []struct {
		name string
		h    *ExtensionHandler
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "success",
			h: NewExtensionHandler(&mockExtensionUpserter{
				upsertFunc: func(ctx context.Context, ext *model.Extension) (string, error) { return ext.ID, nil },
			}),
			req: func(t *testing.T) *http.Request { return upsertRequest(t, validUpsertBody()) },
		},
		{
			name: "store failure",
			h: NewExtensionHandler(&mockExtensionUpserter{
				upsertFunc: func(ctx context.Context, ext *model.Extension) (string, error) {
					return "", errors.New("boom")
				},
			}),
			req: func(t *testing.T) *http.Request { return upsertRequest(t, validUpsertBody()) },
		},
		{
			name: "invalid input",
			h:    NewExtensionHandler(&mockExtensionUpserter{}),
			req: func(t *testing.T) *http.Request {
				return upsertRequest(t, model.UpsertExtensionRequest{})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.h.Upsert(rec, tc.req(t))
			if rec.Code == http.StatusNotFound {
				t.Errorf("upsert must never answer 404, got one for %s", tc.name)
			}
		})
	}
}
