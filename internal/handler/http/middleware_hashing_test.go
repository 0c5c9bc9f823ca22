package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "integrity-secret"

func TestWithHashing_Request(t *testing.T) {
	body := `{"title":"Dune","owner_id":"1"}`
	hasher := utils.NewHasher(testHashKey)

	tests := []struct {
		name       string
		signature  string
		wantStatus int
		wantCalled bool
	}{
		{name: "valid signature", signature: hasher.SumHex([]byte(body)), wantStatus: http.StatusOK, wantCalled: true},
		{name: "unsigned request", signature: "", wantStatus: http.StatusOK, wantCalled: true},
		{name: "wrong signature", signature: utils.HashString(body, "other-key"), wantStatus: http.StatusBadRequest},
		{name: "not hex", signature: "zz-not-hex", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, WithIntegrityKey(testHashKey))

			called := false
			var seenBody string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				b, _ := io.ReadAll(r.Body)
				seenBody = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(hashHeader, tt.signature)
			}
			rec := httptest.NewRecorder()

			h.withHashing(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				assert.Equal(t, body, seenBody, "body must be readable downstream")
			} else {
				assert.Contains(t, rec.Body.String(), msgIntegrityFailed)
			}
		})
	}
}

func TestWithHashing_SignsResponse(t *testing.T) {
	h := newTestHandler(nil, WithIntegrityKey(testHashKey))
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"a":`))
		_, _ = w.Write([]byte(`1}`))
	})

	h.withHashing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"a":1}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, utils.NewHasher(testHashKey).Verify(rec.Body.Bytes(), rec.Header().Get(hashHeader)))
}

func TestWithHashing_EmptyResponseUnsigned(t *testing.T) {
	h := newTestHandler(nil, WithIntegrityKey(testHashKey))
	rec := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	h.withHashing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/user/1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(hashHeader))
}

func TestInit_IntegrityCheckOnlyWhenKeySet(t *testing.T) {
	rec := serve(newTestHandler(nil), http.MethodGet, "/version", nil)
	assert.Empty(t, rec.Header().Get(hashHeader))

	rec = serve(newTestHandler(nil, WithIntegrityKey(testHashKey)), http.MethodGet, "/version", nil)
	assert.Equal(t, utils.NewHasher(testHashKey).SumHex([]byte("test-version")), rec.Header().Get(hashHeader))
}
