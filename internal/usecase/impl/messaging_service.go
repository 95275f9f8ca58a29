package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"quickmart/config"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultDirectoryTTL = 5 * time.Minute
	previewLength       = 80
)

// directoryKey scopes a cached directory to the caller, since the API may
// answer differently per user.
type directoryKey struct {
	userID string
	role   entity.Role
}

type directoryEntry struct {
	users     []*entity.User
	fetchedAt time.Time
}

type messagingService struct {
	api          service.MessagingAPI
	publisher    service.EventPublisher
	directoryTTL time.Duration
	now          func() time.Time
	logger       *slog.Logger

	mu        sync.Mutex
	directory map[directoryKey]directoryEntry
	// unreadSeen holds, per session, the unread message IDs seen by the last poll.
	unreadSeen map[uuid.UUID]map[string]struct{}
}

// NewMessagingService creates the messaging service.
func NewMessagingService(
	cfg *config.Config,
	api service.MessagingAPI,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MessagingUsecase {
	ttl := defaultDirectoryTTL
	if cfg.Polling != nil && cfg.Polling.Directory > 0 {
		ttl = cfg.Polling.Directory
	}

	return &messagingService{
		api:          api,
		publisher:    publisher,
		directoryTTL: ttl,
		now:          time.Now,
		logger:       logger,
		directory:    make(map[directoryKey]directoryEntry),
		unreadSeen:   make(map[uuid.UUID]map[string]struct{}),
	}
}

func (s *messagingService) Directory(ctx context.Context, session *entity.Session, role entity.Role, query string) ([]*entity.User, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !entity.CanMessage(session.Role, role) {
		return nil, domainerrors.ErrPeerNotAllowed.WithDetails(session.Role.String() + " cannot message " + role.String())
	}

	users, err := s.directoryUsers(ctx, session, role)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.ID == session.UserID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		out = append(out, u)
	}

	return out, nil
}

// directoryUsers serves the caller's directory for role from memory while it is fresh.
func (s *messagingService) directoryUsers(ctx context.Context, session *entity.Session, role entity.Role) ([]*entity.User, error) {
	now := s.now()
	key := directoryKey{userID: session.UserID, role: role}

	s.mu.Lock()
	entry, ok := s.directory[key]
	s.mu.Unlock()
	if ok && now.Sub(entry.fetchedAt) < s.directoryTTL {
		return entry.users, nil
	}

	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	users, err := s.api.ListDirectory(apiCtx, role)
	if err != nil {
		return nil, errors.Wrap(err, "list directory")
	}
	users = withoutNil(users)
	slices.SortStableFunc(users, func(a, b *entity.User) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	s.mu.Lock()
	s.directory[key] = directoryEntry{users: users, fetchedAt: now}
	s.mu.Unlock()

	return users, nil
}

func (s *messagingService) EvictDirectory() {
	cutoff := s.now().Add(-s.directoryTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.directory {
		if entry.fetchedAt.Before(cutoff) {
			delete(s.directory, key)
		}
	}
}

func (s *messagingService) Conversation(ctx context.Context, session *entity.Session, peerID string) ([]*entity.Message, error) {
	if strings.TrimSpace(peerID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("peer id is required")
	}
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	messages, err := s.api.GetConversation(apiCtx, peerID)
	if err != nil {
		return nil, errors.Wrap(err, "get conversation")
	}

	messages = withoutNil(messages)
	slices.SortStableFunc(messages, func(a, b *entity.Message) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return messages, nil
}

func (s *messagingService) Send(ctx context.Context, session *entity.Session, receiverID, content string) (*entity.Message, error) {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(receiverID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("receiver id is required")
	}
	if receiverID == session.UserID {
		return nil, domainerrors.ErrInvalidMessage.WithDetails("cannot message yourself")
	}

	content = strings.TrimSpace(content)
	length := utf8.RuneCountInString(content)
	if length < constants.MessageMinLength || length > constants.MessageMaxLength {
		return nil, domainerrors.ErrInvalidMessage
	}

	message, err := s.api.SendMessage(apiCtx, receiverID, content)
	if err != nil {
		return nil, errors.Wrap(err, "send message")
	}

	return message, nil
}

func (s *messagingService) Inbox(ctx context.Context, session *entity.Session) ([]*entity.ConversationSummary, error) {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	messages, err := s.api.ListMessages(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list messages")
	}

	return summarize(messages, session.UserID), nil
}

// summarize groups messages by peer, most recent conversation first.
func summarize(messages []*entity.Message, userID string) []*entity.ConversationSummary {
	byPeer := make(map[string]*entity.ConversationSummary)
	for _, m := range messages {
		if m == nil {
			continue
		}
		peer := m.PeerOf(userID)
		summary, ok := byPeer[peer]
		if !ok {
			summary = &entity.ConversationSummary{PeerID: peer}
			byPeer[peer] = summary
		}
		if summary.LastMessage == nil || m.CreatedAt.After(summary.LastMessage.CreatedAt) {
			summary.LastMessage = m
		}
		if m.ReceiverID == userID && !m.Read {
			summary.Unread++
		}
	}

	out := make([]*entity.ConversationSummary, 0, len(byPeer))
	for _, summary := range byPeer {
		out = append(out, summary)
	}
	slices.SortFunc(out, func(a, b *entity.ConversationSummary) int {
		if c := b.LastMessage.CreatedAt.Compare(a.LastMessage.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.PeerID, b.PeerID)
	})

	return out
}

func (s *messagingService) Poll(ctx context.Context, session *entity.Session) (int, error) {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return 0, err
	}

	messages, err := s.api.ListMessages(apiCtx)
	if err != nil {
		return 0, errors.Wrap(err, "poll messages")
	}

	unread := make(map[string]struct{})
	var incoming []*entity.Message
	for _, m := range messages {
		if m == nil || m.ReceiverID != session.UserID || m.Read {
			continue
		}
		unread[m.ID] = struct{}{}
		incoming = append(incoming, m)
	}

	s.mu.Lock()
	previous, polled := s.unreadSeen[session.ID]
	s.unreadSeen[session.ID] = unread
	s.mu.Unlock()

	if !polled {
		return 0, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	now := s.now()
	fresh := 0
	for _, m := range incoming {
		if _, seen := previous[m.ID]; seen {
			continue
		}
		fresh++
		publishEvent(ctx, s.publisher, logger, newEvent(ctx, constants.EventMessageReceived, session.UserID,
			"New message",
			preview(m.Content),
			map[string]string{
				"message_id": m.ID,
				"sender_id":  m.SenderID,
			}, now))
	}

	return fresh, nil
}

func (s *messagingService) Forget(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.unreadSeen, sessionID)
}

func preview(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}

	runes := []rune(content)

	return string(runes[:previewLength-1]) + "…"
}
