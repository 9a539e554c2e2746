package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, respID)
		parsed, err := uuid.Parse(ctxID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("reuses a valid client id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "req_abc-123")
		assert.Equal(t, "req_abc-123", ctxID)
		assert.Equal(t, "req_abc-123", respID)
	})

	for name, bad := range map[string]string{
		"illegal characters": "abc<script>",
		"spaces":             "abc def",
		"too long":           strings.Repeat("a", 129),
	} {
		t.Run("replaces "+name, func(t *testing.T) {
			t.Parallel()
			ctxID, respID := serve(t, bad)
			assert.NotEqual(t, bad, ctxID)
			assert.Equal(t, ctxID, respID)
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	ctx := requestid.WithContext(context.Background(), "id-1")
	assert.Equal(t, "id-1", requestid.FromContext(ctx))
	assert.NotEqual(t, requestid.New(), requestid.New())
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "id-42"), "hello")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "id-42", entry["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	assert.NotContains(t, buf.String(), "request_id")
}
