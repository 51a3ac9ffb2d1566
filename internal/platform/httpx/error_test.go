package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teozhengyang/programming-helper/internal/platform/requestctx"
)

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "01HZX")
	ctx = requestctx.WithTrace(ctx, requestctx.TraceInfo{TraceID: "trace-1"})

	rec := httptest.NewRecorder()
	WriteError(ctx, rec, NewError("not_found", "page not\nfound", http.StatusNotFound).WithDetails(map[string]any{"path": "/x"}))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "not_found", payload["error"])
	assert.Equal(t, "page not found", payload["message"])
	assert.EqualValues(t, 404, payload["status"])
	assert.Equal(t, "01HZX", payload["request_id"])
	assert.Equal(t, "trace-1", payload["trace_id"])
	assert.Equal(t, "/x", payload["path"])
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusInternalServerError, NewError("boom", "boom", 0).Status)
}

func TestPrefersJSON(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"":                                 false,
		"application/json":                 true,
		"application/problem+json":         true,
		"text/html,application/json;q=0.9": false,
		"application/json, text/html":      true,
		"*/*":                              false,
	}
	for accept, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if accept != "" {
			r.Header.Set("Accept", accept)
		}
		assert.Equal(t, want, PrefersJSON(r), accept)
	}
}
