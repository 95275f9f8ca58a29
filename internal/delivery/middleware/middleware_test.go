package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "quickmart/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsableRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"empty", "", false},
		{"uuid", "7f1c2a4e-1d2b-4c1e-9a57-3b0f3c7f2e10", true},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"with space", "abc def", false},
		{"newline", "abc\ndef", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usableRequestID(tt.id))
		})
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	serve := func(header string) (string, string) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		if header != "" {
			req.Header.Set(echo.HeaderXRequestID, header)
		}
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		var fromCtx string
		err := mw.Process(func(c echo.Context) error {
			fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

			return nil
		})(c)
		require.NoError(t, err)

		return rec.Header().Get(echo.HeaderXRequestID), fromCtx
	}

	echoed, fromCtx := serve("client-req-1")
	assert.Equal(t, "client-req-1", echoed)
	assert.Equal(t, "client-req-1", fromCtx)

	echoed, fromCtx = serve("bad id")
	assert.NotEqual(t, "bad id", echoed)
	assert.Equal(t, echoed, fromCtx)
}

func TestRedactQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/stream?token=secret&x=1", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	query := redactQuery(c)
	assert.NotContains(t, query, "secret")
	assert.Contains(t, query, "x=1")
}
