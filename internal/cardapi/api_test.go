package cardapi_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/internal/cardapi"
	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func serve(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func data[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestCheck(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "valid visa",
			body: `{"number":"4111 1111 1111 1111"}`,
			want: map[string]any{
				"network": "visa", "name": "Visa", "status": "full", "valid": true,
				"masked": "****-****-****-1111", "formatted": "4111-1111-1111-1111", "max_length": float64(16),
			},
		},
		{
			name: "amex with separator",
			body: `{"number":"378282246310005","separator":" "}`,
			want: map[string]any{
				"network": "american_express", "name": "American Express", "status": "full", "valid": true,
				"masked": "**** ****** *0005", "formatted": "3782 822463 10005", "max_length": float64(15),
			},
		},
		{
			name: "partial mastercard",
			body: `{"number":"5500"}`,
			want: map[string]any{
				"network": "mastercard", "name": "MasterCard", "status": "partial", "valid": false,
				"masked": "****", "formatted": "5500", "max_length": float64(16),
			},
		},
		{
			name: "unknown prefix",
			body: `{"number":"9999"}`,
			want: map[string]any{
				"network": "unknown", "name": "Unknown", "status": "no_match", "valid": false,
				"masked": "****", "formatted": "9999", "max_length": float64(7),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, env := serve(t, h, http.MethodPost, "/v1/cards/check", tt.body)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.want, data[map[string]any](t, env))
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	code, env := serve(t, h, http.MethodPost, "/v1/cards/check", `{"number":"4111-abcd"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.Contains(t, env.Error.Details, "number")

	code, env = serve(t, h, http.MethodPost, "/v1/cards/check", `{"number":"41111111111111111111"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code, "more than 19 digits")

	code, env = serve(t, h, http.MethodPost, "/v1/cards/check", `{"number":"4111","separator":"----"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "separator")

	code, env = serve(t, h, http.MethodPost, "/v1/cards/check", `{"number":"4111","cvv":"123"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad_request", env.Error.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/cards/check", strings.NewReader(`{"number":"4111"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestCheck_LogsMaskedNumber(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := cardapi.New(cardapi.WithLogger(log)).Router()

	code, _ := serve(t, h, http.MethodPost, "/v1/cards/check", `{"number":"4111111111111111"}`)
	require.Equal(t, http.StatusOK, code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "card checked", entry["msg"])
	assert.Equal(t, "visa", entry["card_network"])
	assert.Equal(t, "************1111", entry["pan"])
	assert.Equal(t, "cardapi", entry["component"])
	assert.NotContains(t, buf.String(), "4111111111111111")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	tests := []struct {
		body    string
		network string
		valid   bool
	}{
		{`{"number":"4111111111111111","network":"visa"}`, "visa", true},
		{`{"number":"4111111111111112","network":"visa"}`, "visa", false},
		{`{"number":"4111111111111111","network":"american_express"}`, "american_express", false},
		{`{"number":"378282246310005","network":" American-Express "}`, "american_express", true},
		{`{"number":"6200000000000000000","network":"china_unionpay"}`, "china_unionpay", true},
	}
	for _, tt := range tests {
		code, env := serve(t, h, http.MethodPost, "/v1/cards/validate", tt.body)
		require.Equal(t, http.StatusOK, code, tt.body)
		got := data[map[string]any](t, env)
		assert.Equal(t, tt.network, got["network"], tt.body)
		assert.Equal(t, tt.valid, got["valid"], tt.body)
	}

	code, env := serve(t, h, http.MethodPost, "/v1/cards/validate", `{"number":"4111111111111111","network":"unknown"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "network")

	code, env = serve(t, h, http.MethodPost, "/v1/cards/validate", `{"number":"","network":"bogus"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "number")
	assert.Contains(t, env.Error.Details, "network")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	tests := []struct {
		query     string
		network   string
		formatted string
	}{
		{"number=378282246310005", "american_express", "3782-822463-10005"},
		{"number=378282246310005&network=visa&separator=%20", "visa", "3782 8224 6310 005"},
		{"number=4111111111111111&separator=", "visa", "4111-1111-1111-1111"},
		{"number=36227206271667&separator=.", "diners_club_international", "3622.720627.1667"},
	}
	for _, tt := range tests {
		code, env := serve(t, h, http.MethodGet, "/v1/cards/format?"+tt.query, "")
		require.Equal(t, http.StatusOK, code, tt.query)
		assert.Equal(t, map[string]any{"network": tt.network, "formatted": tt.formatted}, data[map[string]any](t, env), tt.query)
	}

	code, env := serve(t, h, http.MethodGet, "/v1/cards/format", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "number")

	code, _ = serve(t, h, http.MethodGet, "/v1/cards/format?number=4111&network=bogus", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestNetworks(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	code, env := serve(t, h, http.MethodGet, "/v1/networks", "")
	require.Equal(t, http.StatusOK, code)

	rows := data[[]cardnetwork.NetworkSpec](t, env)
	assert.Equal(t, cardnetwork.Table(), rows)
	assert.Equal(t, float64(len(rows)), env.Meta["count"])
	assert.Equal(t, cardnetwork.Visa, rows[0].Network)

	code, env = serve(t, h, http.MethodGet, "/v1/networks/american_express", "")
	require.Equal(t, http.StatusOK, code)
	spec := data[cardnetwork.NetworkSpec](t, env)
	assert.Equal(t, "American Express", spec.Name)
	assert.Equal(t, []int{15}, spec.Lengths)

	for _, name := range []string{"unknown", "bogus"} {
		code, env = serve(t, h, http.MethodGet, "/v1/networks/"+name, "")
		assert.Equal(t, http.StatusNotFound, code, name)
		assert.Equal(t, "not_found", env.Error.Code)
	}
}

func TestRouting(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	code, env := serve(t, h, http.MethodGet, "/v1/cards", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Error.Code)

	code, env = serve(t, h, http.MethodDelete, "/v1/networks", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestSeparatorWithDigits(t *testing.T) {
	t.Parallel()

	h := cardapi.New().Router()

	code, env := serve(t, h, http.MethodPost, "/v1/cards/check", `{"number":"4111111111114321","separator":"9"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "separator")

	code, env = serve(t, h, http.MethodGet, "/v1/cards/format?number=4111&separator=9", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "separator")
}
