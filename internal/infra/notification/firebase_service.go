package notification

import (
	"context"
	"fmt"

	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastSender is the part of *messaging.Client the service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client    multicastSender
	batchSize int
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	opts := make([]option.ClientOption, 0, 1)
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client, constants.FCMBatchSize), nil
}

func newFirebaseService(client multicastSender, batchSize int) *firebaseService {
	return &firebaseService{client: client, batchSize: batchSize}
}

// SendBatchNotification sends the message to every token, at most batchSize per request.
// A failed request aborts the remaining batches and returns what was sent so far.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	result := &service.BatchResult{
		MessageIDs: make(map[string]string, len(tokens)),
		Failures:   make(map[string]string),
	}

	for start := 0; start < len(tokens); start += s.batchSize {
		end := min(start+s.batchSize, len(tokens))
		batch := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			token := batch[idx]
			if sendResponse.Error == nil {
				result.MessageIDs[token] = sendResponse.MessageID

				continue
			}

			result.Failures[token] = sendResponse.Error.Error()
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, token)
			}
		}
	}

	return result, nil
}
