package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/binder"
	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

type networkPath struct {
	Network cardnetwork.Network `path:"network"`
	Page    int                 `path:"page"`
	Query   string              `query:"q"`
}

func params(values map[string]string) func(*http.Request, string) string {
	return func(_ *http.Request, name string) string { return values[name] }
}

func TestPath(t *testing.T) {
	t.Parallel()

	var p networkPath
	err := binder.Path(params(map[string]string{"network": "china_unionpay", "page": "2", "q": "ignored"}))(
		httptest.NewRequest(http.MethodGet, "/v1/networks/china_unionpay", nil), &p)
	require.NoError(t, err)
	assert.Equal(t, networkPath{Network: cardnetwork.ChinaUnionPay, Page: 2}, p)
}

func TestPath_Errors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/v1/networks/bogus", nil)

	var p networkPath
	assert.ErrorIs(t, binder.Path(params(map[string]string{"network": "bogus"}))(req, &p), binder.ErrInvalidPath)
	assert.ErrorIs(t, binder.Path(nil)(req, &p), binder.ErrInvalidPath)
}
