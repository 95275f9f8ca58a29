package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

type storeFixtures struct {
	bucket *blob.Bucket
	store  *blobStore
}

func createTestStore(t *testing.T, secret string) *storeFixtures {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store, err := NewBlobStore(bucket, secret, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return &storeFixtures{bucket: bucket, store: store.(*blobStore)}
}

func newTestSession() *entity.Session {
	now := time.Now().UTC().Truncate(time.Second)

	return &entity.Session{
		ID:         uuid.New(),
		UserID:     "u-42",
		Name:       "Ada",
		Email:      "ada@example.com",
		Role:       entity.RoleCustomer,
		Token:      "upstream-token",
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(time.Hour),
	}
}

func TestBlobStore_SaveLoadRoundTrip(t *testing.T) {
	fx := createTestStore(t, "secret")
	ctx := context.Background()
	session := newTestSession()

	require.NoError(t, fx.store.Save(ctx, session))

	loaded, err := fx.store.Load(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)
}

func TestBlobStore_BlobIsNotPlaintext(t *testing.T) {
	fx := createTestStore(t, "secret")
	ctx := context.Background()
	session := newTestSession()
	require.NoError(t, fx.store.Save(ctx, session))

	raw, err := fx.bucket.ReadAll(ctx, sessionKey(session.ID))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "upstream-token")
}

func TestBlobStore_TamperedBlobIsMissing(t *testing.T) {
	fx := createTestStore(t, "secret")
	ctx := context.Background()
	session := newTestSession()
	require.NoError(t, fx.store.Save(ctx, session))

	raw, err := fx.bucket.ReadAll(ctx, sessionKey(session.ID))
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	require.NoError(t, fx.bucket.WriteAll(ctx, sessionKey(session.ID), raw, nil))

	_, err = fx.store.Load(ctx, session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestBlobStore_OtherSecretCannotRead(t *testing.T) {
	fx := createTestStore(t, "secret")
	ctx := context.Background()
	session := newTestSession()
	require.NoError(t, fx.store.Save(ctx, session))

	other, err := NewBlobStore(fx.bucket, "rotated", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = other.Load(ctx, session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestBlobStore_LoadMissing(t *testing.T) {
	fx := createTestStore(t, "secret")

	_, err := fx.store.Load(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestBlobStore_DeleteAndList(t *testing.T) {
	fx := createTestStore(t, "secret")
	ctx := context.Background()

	first, second := newTestSession(), newTestSession()
	require.NoError(t, fx.store.Save(ctx, first))
	require.NoError(t, fx.store.Save(ctx, second))
	require.NoError(t, fx.bucket.WriteAll(ctx, keyPrefix+"junk.bin", []byte("junk"), nil))

	sessions, err := fx.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	require.NoError(t, fx.store.Delete(ctx, first.ID))
	require.NoError(t, fx.store.Delete(ctx, first.ID))

	sessions, err = fx.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, second.ID, sessions[0].ID)
}

func TestNewSealer_RequiresSecret(t *testing.T) {
	_, err := newSealer("")
	assert.Error(t, err)
}
