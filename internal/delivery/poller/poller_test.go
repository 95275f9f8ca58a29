package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/entity"
	mockUsecase "quickmart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pollerMocks struct {
	sessions  *mockUsecase.MockSessionUsecase
	carts     *mockUsecase.MockCartUsecase
	messaging *mockUsecase.MockMessagingUsecase
}

func createTestPoller(t *testing.T, cfg *config.PollingConfig) (*Poller, pollerMocks) {
	t.Helper()

	mocks := pollerMocks{
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		carts:     mockUsecase.NewMockCartUsecase(t),
		messaging: mockUsecase.NewMockMessagingUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newPoller(cfg, logger, mocks.sessions, mocks.carts, mocks.messaging), mocks
}

func liveSessions() []*entity.Session {
	return []*entity.Session{
		{ID: uuid.New(), UserID: "c-1", Role: entity.RoleCustomer},
		{ID: uuid.New(), UserID: "v-1", Role: entity.RoleVendor},
		{ID: uuid.New(), UserID: "c-2", Role: entity.RoleCustomer},
	}
}

func TestRefreshCarts(t *testing.T) {
	t.Run("only customer sessions", func(t *testing.T) {
		p, mocks := createTestPoller(t, &config.PollingConfig{})
		sessions := liveSessions()

		mocks.sessions.EXPECT().ListActive(mock.Anything).Return(sessions, nil)
		mocks.carts.EXPECT().Refresh(mock.Anything, sessions[0]).Return(&entity.Cart{}, nil)
		mocks.carts.EXPECT().Refresh(mock.Anything, sessions[2]).Return(nil, errors.New("upstream down"))

		require.NoError(t, p.refreshCarts(context.Background()))
	})

	t.Run("listing fails", func(t *testing.T) {
		p, mocks := createTestPoller(t, &config.PollingConfig{})
		mocks.sessions.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("bucket gone"))

		assert.Error(t, p.refreshCarts(context.Background()))
	})
}

func TestPollMessages(t *testing.T) {
	p, mocks := createTestPoller(t, &config.PollingConfig{})
	sessions := liveSessions()

	mocks.sessions.EXPECT().ListActive(mock.Anything).Return(sessions, nil)
	mocks.messaging.EXPECT().Poll(mock.Anything, sessions[0]).Return(2, nil)
	mocks.messaging.EXPECT().Poll(mock.Anything, sessions[1]).Return(0, nil)
	mocks.messaging.EXPECT().Poll(mock.Anything, sessions[2]).Return(0, errors.New("timeout"))

	require.NoError(t, p.pollMessages(context.Background()))
}

func TestPurgeSessions(t *testing.T) {
	p, mocks := createTestPoller(t, &config.PollingConfig{})
	first, second := uuid.New(), uuid.New()

	mocks.sessions.EXPECT().PurgeIdle(mock.Anything).Return([]uuid.UUID{first, second}, nil)

	require.NoError(t, p.purgeSessions(context.Background()))
}

func TestPurgeSessions_Fails(t *testing.T) {
	p, mocks := createTestPoller(t, &config.PollingConfig{})
	mocks.sessions.EXPECT().PurgeIdle(mock.Anything).Return(nil, errors.New("bucket gone"))

	assert.Error(t, p.purgeSessions(context.Background()))
}

func TestServe(t *testing.T) {
	p, mocks := createTestPoller(t, &config.PollingConfig{Directory: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticked := make(chan struct{}, 1)
	mocks.messaging.EXPECT().EvictDirectory().Run(func() {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}).Return()

	served := make(chan error, 1)
	go func() { served <- p.Serve(ctx) }()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("directory eviction never ran")
	}

	require.NoError(t, p.stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestStopBeforeServe(t *testing.T) {
	p, _ := createTestPoller(t, &config.PollingConfig{})

	assert.NoError(t, p.stop(context.Background()))
}
