package notification

import (
	"context"
	"fmt"
	"log/slog"

	"quickmart/internal/domain/service"
)

// logService stands in for FCM when no Firebase project is configured.
type logService struct {
	logger *slog.Logger
}

// NewLogService returns a NotificationService that only logs pushes.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	result := &service.BatchResult{
		SuccessCount: len(tokens),
		MessageIDs:   make(map[string]string, len(tokens)),
		Failures:     map[string]string{},
	}

	for i, token := range tokens {
		result.MessageIDs[token] = fmt.Sprintf("log-%d", i)
	}

	s.logger.InfoContext(ctx, "Push notification (log only)",
		slog.String("title", msg.Title),
		slog.Int("tokens", len(tokens)),
	)

	return result, nil
}
