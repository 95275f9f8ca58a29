package usecase

import (
	"context"

	"quickmart/internal/domain/entity"

	"github.com/google/uuid"
)

// MessagingUsecase covers the user directory and direct messages.
type MessagingUsecase interface {
	// Directory lists users of role the caller may message, filtered by a
	// case-insensitive substring of name or email.
	Directory(ctx context.Context, session *entity.Session, role entity.Role, query string) ([]*entity.User, error)

	// Conversation returns the messages with peerID, oldest first.
	Conversation(ctx context.Context, session *entity.Session, peerID string) ([]*entity.Message, error)

	// Send trims content and requires 1 to 2000 characters.
	Send(ctx context.Context, session *entity.Session, receiverID, content string) (*entity.Message, error)

	// Inbox summarizes conversations, most recent first.
	Inbox(ctx context.Context, session *entity.Session) ([]*entity.ConversationSummary, error)

	// Poll fetches messages and publishes an event for each unread one that arrived
	// since the previous poll of the session. The first poll only records a baseline.
	Poll(ctx context.Context, session *entity.Session) (int, error)

	// Forget drops the polling baseline of a session.
	Forget(sessionID uuid.UUID)

	// EvictDirectory drops directory entries older than the refresh interval.
	EvictDirectory()
}
