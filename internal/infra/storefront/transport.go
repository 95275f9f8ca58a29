package storefront

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/service"
)

// authTransport attaches the caller's bearer token and logs every exchange.
type authTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func newAuthTransport(base http.RoundTripper, logger *slog.Logger) *authTransport {
	return &authTransport{base: base, logger: logger}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if token, ok := service.AccessTokenFromContext(ctx); ok {
		// RoundTrippers must not modify the caller's request.
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		if req.Header.Get(deliverycontext.HeaderXRequestID) == "" {
			req = req.Clone(ctx)
			req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	latency := time.Since(start)

	logger := deliverycontext.GetLoggerOrDefault(ctx, t.logger)
	if err != nil {
		logger.WarnContext(ctx, "Storefront API request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Duration("latency", latency),
			slog.Any("error", err),
		)

		return nil, err
	}

	level := slog.LevelDebug
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		level = slog.LevelError
	case resp.StatusCode >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	logger.Log(ctx, level, "Storefront API response",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency),
	)

	return resp, nil
}
