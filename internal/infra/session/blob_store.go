// Package session persists sealed sessions in a gocloud.dev blob bucket.
package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"quickmart/config"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/lifecycle"
	"quickmart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	keyPrefix = "sessions/"
	keySuffix = ".bin"
)

type blobStore struct {
	bucket *blob.Bucket
	sealer *sealer
	logger *slog.Logger
}

// StoreParams defines the dependencies of the session store
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore opens the configured bucket and closes it on shutdown.
func NewStore(params StoreParams) (repository.SessionStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Session.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open session bucket %s", params.Config.Session.BucketURL)
	}

	store, err := NewBlobStore(bucket, params.Config.SecretKey.Session, params.Logger)
	if err != nil {
		_ = bucket.Close()

		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return store, nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, secret string, logger *slog.Logger) (repository.SessionStore, error) {
	s, err := newSealer(secret)
	if err != nil {
		return nil, err
	}

	return &blobStore{bucket: bucket, sealer: s, logger: logger}, nil
}

func sessionKey(id uuid.UUID) string {
	return keyPrefix + id.String() + keySuffix
}

func (s *blobStore) Save(ctx context.Context, session *entity.Session) error {
	plaintext, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	sealed, err := s.sealer.seal(plaintext)
	if err != nil {
		return err
	}

	if err := s.bucket.WriteAll(ctx, sessionKey(session.ID), sealed, &blob.WriterOptions{
		ContentType: "application/octet-stream",
	}); err != nil {
		return errors.Wrap(err, "write session")
	}

	return nil
}

func (s *blobStore) Load(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return s.read(ctx, sessionKey(id))
}

func (s *blobStore) read(ctx context.Context, key string) (*entity.Session, error) {
	sealed, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
		}

		return nil, errors.Wrap(err, "read session")
	}

	plaintext, err := s.sealer.open(sealed)
	if err != nil {
		// Tampered blob or rotated secret: treat as signed out.
		s.logger.WarnContext(ctx, "Discarding unreadable session", slog.String("key", key))

		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	var session entity.Session
	if err := json.Unmarshal(plaintext, &session); err != nil {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return &session, nil
}

func (s *blobStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.bucket.Delete(ctx, sessionKey(id))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete session")
	}

	return nil
}

func (s *blobStore) List(ctx context.Context) ([]*entity.Session, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: keyPrefix})

	var sessions []*entity.Session
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list sessions")
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, keySuffix) {
			continue
		}

		session, err := s.read(ctx, obj.Key)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionNotFound) {
				continue
			}

			return nil, err
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}
