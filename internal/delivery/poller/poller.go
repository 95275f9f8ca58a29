package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quickmart/config"
	"quickmart/internal/delivery"
	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/lifecycle"
	"quickmart/internal/usecase"
	"quickmart/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentSessions bounds how many sessions one tick refreshes at a time.
const maxConcurrentSessions = 8

// Params holds dependencies for the poller, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	SessionUC   usecase.SessionUsecase
	CartUC      usecase.CartUsecase
	MessagingUC usecase.MessagingUsecase
}

// Poller runs the background refresh timers. Each timer ticks on its own; a
// failed tick is logged and the timer waits for the next one.
type Poller struct {
	cfg         *config.PollingConfig
	logger      *slog.Logger
	sessionUC   usecase.SessionUsecase
	cartUC      usecase.CartUsecase
	messagingUC usecase.MessagingUsecase

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// New creates the poller delivery.
func New(params Params) delivery.Delivery {
	p := newPoller(params.Cfg.Polling, params.Logger, params.SessionUC, params.CartUC, params.MessagingUC)

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p
}

func newPoller(
	cfg *config.PollingConfig,
	logger *slog.Logger,
	sessionUC usecase.SessionUsecase,
	cartUC usecase.CartUsecase,
	messagingUC usecase.MessagingUsecase,
) *Poller {
	return &Poller{
		cfg:         cfg,
		logger:      logger,
		sessionUC:   sessionUC,
		cartUC:      cartUC,
		messagingUC: messagingUC,
	}
}

func (p *Poller) jobs() []job {
	return []job{
		{name: "cart_refresh", interval: p.cfg.Cart, run: p.refreshCarts},
		{name: "message_poll", interval: p.cfg.Messages, run: p.pollMessages},
		{name: "directory_evict", interval: p.cfg.Directory, run: p.evictDirectory},
		{name: "session_purge", interval: p.cfg.SessionPurge, run: p.purgeSessions},
	}
}

// Serve blocks until ctx is cancelled or the poller is stopped.
func (p *Poller) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	defer close(done)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	for _, j := range p.jobs() {
		if j.interval <= 0 {
			p.logger.Warn("Poller job disabled", slog.String("job", j.name))

			continue
		}

		p.logger.Info("Starting poller job",
			slog.String("job", j.name),
			slog.String("interval", util.FormatDuration(j.interval)),
		)

		group.Go(func() error {
			p.every(ctx, j)

			return nil
		})
	}

	return errors.WithStack(group.Wait())
}

func (p *Poller) every(ctx context.Context, j job) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			if err := j.run(ctx); err != nil && ctx.Err() == nil {
				p.logger.Warn("Poller tick failed",
					slog.String("job", j.name),
					slog.Any("error", err),
				)

				continue
			}

			p.logger.Debug("Poller tick done",
				slog.String("job", j.name),
				slog.Duration("took", time.Since(start)),
			)
		}
	}
}

func (p *Poller) stop(ctx context.Context) error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}

	p.logger.Info("Stopping poller")
	cancel()

	ctx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "poller did not stop in time")
	}
}

// forEachSession runs fn over live sessions matching keep, a few at a time.
// Individual failures are logged; the tick itself only fails when listing does.
func (p *Poller) forEachSession(
	ctx context.Context,
	job string,
	keep func(*entity.Session) bool,
	fn func(context.Context, *entity.Session) error,
) error {
	sessions, err := p.sessionUC.ListActive(ctx)
	if err != nil {
		return errors.Wrap(err, "list active sessions")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentSessions)

	for _, session := range sessions {
		if keep != nil && !keep(session) {
			continue
		}

		group.Go(func() error {
			if err := fn(groupCtx, session); err != nil {
				p.logger.Warn("Poller session update failed",
					slog.String("job", job),
					slog.String("session_id", session.ID.String()),
					slog.String("user_id", session.UserID),
					slog.Any("error", err),
				)
			}

			return nil
		})
	}

	return errors.WithStack(group.Wait())
}

func (p *Poller) refreshCarts(ctx context.Context) error {
	isCustomer := func(s *entity.Session) bool { return s.Role == entity.RoleCustomer }

	return p.forEachSession(ctx, "cart_refresh", isCustomer, func(ctx context.Context, s *entity.Session) error {
		_, err := p.cartUC.Refresh(ctx, s)

		return err
	})
}

func (p *Poller) pollMessages(ctx context.Context) error {
	return p.forEachSession(ctx, "message_poll", nil, func(ctx context.Context, s *entity.Session) error {
		received, err := p.messagingUC.Poll(ctx, s)
		if err != nil {
			return err
		}
		if received > 0 {
			p.logger.Debug("New messages received",
				slog.String("user_id", s.UserID),
				slog.Int("count", received),
			)
		}

		return nil
	})
}

func (p *Poller) evictDirectory(context.Context) error {
	p.messagingUC.EvictDirectory()

	return nil
}

func (p *Poller) purgeSessions(ctx context.Context) error {
	purged, err := p.sessionUC.PurgeIdle(ctx)
	if err != nil {
		return errors.Wrap(err, "purge idle sessions")
	}

	if len(purged) > 0 {
		p.logger.Debug("Poller purged idle sessions", slog.Int("count", len(purged)))
	}

	return nil
}
