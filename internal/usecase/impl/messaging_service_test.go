package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockSvc "quickmart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messagingServiceFixtures struct {
	service   *messagingService
	api       *mockSvc.MockMessagingAPI
	publisher *mockSvc.MockEventPublisher
	session   *entity.Session
	clock     *time.Time
}

func createTestMessagingService(t *testing.T) messagingServiceFixtures {
	api := mockSvc.NewMockMessagingAPI(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{Polling: &config.PollingConfig{Directory: time.Minute}}

	clock := testNow
	svc := NewMessagingService(cfg, api, publisher, discardLogger()).(*messagingService)
	svc.now = func() time.Time { return clock }

	return messagingServiceFixtures{
		service:   svc,
		api:       api,
		publisher: publisher,
		session:   &entity.Session{ID: uuid.New(), UserID: "c-1", Role: entity.RoleCustomer, Token: "up"},
		clock:     &clock,
	}
}

func TestMessagingService_Directory(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListDirectory(mock.Anything, entity.RoleVendor).Return([]*entity.User{
		{ID: "v-2", Name: "Zed's Deli", Email: "zed@example.com"},
		{ID: "v-1", Name: "Apple Barn", Email: "orchard@example.com"},
	}, nil).Once()

	users, err := fx.service.Directory(ctx, fx.session, entity.RoleVendor, "")
	require.NoError(t, err)
	assert.Equal(t, "v-1", users[0].ID)

	// Served from memory within the TTL.
	users, err = fx.service.Directory(ctx, fx.session, entity.RoleVendor, "ORCHARD")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "v-1", users[0].ID)
}

func TestMessagingService_Directory_Refetch(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListDirectory(mock.Anything, entity.RoleVendor).Return([]*entity.User{}, nil).Twice()

	_, err := fx.service.Directory(ctx, fx.session, entity.RoleVendor, "")
	require.NoError(t, err)

	*fx.clock = fx.clock.Add(2 * time.Minute)
	fx.service.EvictDirectory()
	assert.Empty(t, fx.service.directory)

	_, err = fx.service.Directory(ctx, fx.session, entity.RoleVendor, "")
	require.NoError(t, err)
}

func TestMessagingService_Directory_ScopedToCaller(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()
	other := &entity.Session{ID: uuid.New(), UserID: "c-2", Role: entity.RoleCustomer, Token: "up-2"}

	fx.api.EXPECT().ListDirectory(mock.Anything, entity.RoleVendor).Return([]*entity.User{{ID: "v-1"}}, nil).Once()
	fx.api.EXPECT().ListDirectory(mock.Anything, entity.RoleVendor).Return([]*entity.User{{ID: "v-2"}}, nil).Once()

	users, err := fx.service.Directory(ctx, fx.session, entity.RoleVendor, "")
	require.NoError(t, err)
	assert.Equal(t, "v-1", users[0].ID)

	users, err = fx.service.Directory(ctx, other, entity.RoleVendor, "")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "v-2", users[0].ID)
}

func TestMessagingService_Directory_AdminsReachable(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleDelivery} {
		t.Run(role.String(), func(t *testing.T) {
			fx := createTestMessagingService(t)
			fx.session.Role = role
			fx.api.EXPECT().ListDirectory(mock.Anything, entity.RoleAdmin).Return([]*entity.User{{ID: "a-1", Name: "Ops"}}, nil)

			users, err := fx.service.Directory(context.Background(), fx.session, entity.RoleAdmin, "")

			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, "a-1", users[0].ID)
		})
	}
}

func TestMessagingService_Directory_PeerNotAllowed(t *testing.T) {
	fx := createTestMessagingService(t)

	_, err := fx.service.Directory(context.Background(), fx.session, entity.RoleDelivery, "")

	assert.ErrorIs(t, err, domainerrors.ErrPeerNotAllowed)
}

func TestMessagingService_Send(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	fx.api.EXPECT().SendMessage(mock.Anything, "v-1", "Is the oat milk back?").
		Return(&entity.Message{ID: "m1", Content: "Is the oat milk back?"}, nil)

	message, err := fx.service.Send(ctx, fx.session, "v-1", "  Is the oat milk back?\n")
	require.NoError(t, err)
	assert.Equal(t, "m1", message.ID)

	_, err = fx.service.Send(ctx, fx.session, "v-1", "   ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMessage)

	_, err = fx.service.Send(ctx, fx.session, "v-1", strings.Repeat("é", constants.MessageMaxLength+1))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMessage)

	_, err = fx.service.Send(ctx, fx.session, "c-1", "hi me")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMessage)
}

func TestMessagingService_Conversation_OldestFirst(t *testing.T) {
	fx := createTestMessagingService(t)

	fx.api.EXPECT().GetConversation(mock.Anything, "v-1").Return([]*entity.Message{
		{ID: "m2", CreatedAt: testNow},
		{ID: "m1", CreatedAt: testNow.Add(-time.Minute)},
	}, nil)

	messages, err := fx.service.Conversation(context.Background(), fx.session, "v-1")

	require.NoError(t, err)
	assert.Equal(t, "m1", messages[0].ID)
}

func TestMessagingService_Inbox(t *testing.T) {
	fx := createTestMessagingService(t)

	fx.api.EXPECT().ListMessages(mock.Anything).Return([]*entity.Message{
		{ID: "m1", SenderID: "v-1", ReceiverID: "c-1", CreatedAt: testNow.Add(-3 * time.Minute)},
		{ID: "m2", SenderID: "c-1", ReceiverID: "v-1", Read: true, CreatedAt: testNow.Add(-2 * time.Minute)},
		{ID: "m3", SenderID: "v-2", ReceiverID: "c-1", CreatedAt: testNow.Add(-time.Minute)},
		{ID: "m4", SenderID: "v-1", ReceiverID: "c-1", Read: true, CreatedAt: testNow.Add(-4 * time.Minute)},
	}, nil)

	inbox, err := fx.service.Inbox(context.Background(), fx.session)

	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "v-2", inbox[0].PeerID)
	assert.Equal(t, "v-1", inbox[1].PeerID)
	assert.Equal(t, "m2", inbox[1].LastMessage.ID)
	assert.Equal(t, 1, inbox[1].Unread)
}

func TestMessagingService_Poll(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	first := []*entity.Message{
		{ID: "m1", SenderID: "v-1", ReceiverID: "c-1", Content: "hello"},
	}
	second := append(first,
		&entity.Message{ID: "m2", SenderID: "v-1", ReceiverID: "c-1", Content: "your order shipped"},
		&entity.Message{ID: "m3", SenderID: "c-1", ReceiverID: "v-1", Content: "thanks"},
	)

	fx.api.EXPECT().ListMessages(mock.Anything).Return(first, nil).Once()
	fresh, err := fx.service.Poll(ctx, fx.session)
	require.NoError(t, err)
	assert.Zero(t, fresh, "first poll only records a baseline")

	fx.api.EXPECT().ListMessages(mock.Anything).Return(second, nil).Once()
	fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(e *entity.StorefrontEvent) bool {
		return e.Type == constants.EventMessageReceived && e.UserID == "c-1" &&
			e.Data["message_id"] == "m2" && e.Body == "your order shipped"
	})).Return(nil).Once()

	fresh, err = fx.service.Poll(ctx, fx.session)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh)

	fx.service.Forget(fx.session.ID)
	assert.NotContains(t, fx.service.unreadSeen, fx.session.ID)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview(" short "))

	long := strings.Repeat("a", 200)
	got := preview(long)
	assert.Equal(t, previewLength, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
