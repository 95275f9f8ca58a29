package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/pkg/errors"
)

type adminService struct {
	api    service.AdminAPI
	logger *slog.Logger
}

// NewAdminService creates the back-office service.
func NewAdminService(api service.AdminAPI, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{
		api:    api,
		logger: logger,
	}
}

func (s *adminService) begin(ctx context.Context, session *entity.Session) (context.Context, error) {
	if err := requireRole(session, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return apiContext(ctx, session)
}

// Dashboard fetches users, orders and analytics concurrently. When the user list is
// unavailable the counts fall back to the analytics summary.
func (s *adminService) Dashboard(ctx context.Context, session *entity.Session) (*usecase.AdminDashboard, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	var (
		users     []*entity.User
		orders    []*entity.Order
		analytics *entity.Analytics
		usersErr  error
	)
	warnings, err := loadSections(apiCtx, deliverycontext.GetLoggerOrDefault(ctx, s.logger),
		section{name: "users", fetch: func(ctx context.Context) error {
			users, usersErr = s.api.ListUsers(ctx, "")
			return usersErr
		}},
		section{name: "orders", fetch: func(ctx context.Context) (err error) {
			orders, err = s.api.ListAllOrders(ctx)
			return err
		}},
		section{name: "analytics", fetch: func(ctx context.Context) (err error) {
			analytics, err = s.api.GetAnalytics(ctx)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}

	users, orders = withoutNil(users), withoutNil(orders)

	dashboard := &usecase.AdminDashboard{
		UsersByRole: make(map[entity.Role]int, len(entity.AllRoles)),
		Analytics:   analytics,
		Warnings:    warnings,
	}
	for _, role := range entity.AllRoles {
		dashboard.UsersByRole[role] = 0
	}

	if usersErr == nil {
		dashboard.TotalUsers = len(users)
		for _, u := range users {
			dashboard.UsersByRole[u.Role]++
		}
	} else if analytics != nil {
		dashboard.TotalUsers = analytics.TotalUsers
		for role, count := range analytics.UsersByRole {
			dashboard.UsersByRole[entity.Role(role)] = count
		}
	}

	var revenue int64
	for _, o := range orders {
		if o.Status != entity.OrderStatusPending && o.Status != entity.OrderStatusCancelled {
			revenue += o.TotalCents()
		}
	}
	dashboard.OrderCount = len(orders)
	dashboard.Revenue = entity.FromCents(revenue)

	return dashboard, nil
}

func (s *adminService) ListUsers(ctx context.Context, session *entity.Session, role entity.Role) ([]*entity.User, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if role != "" && !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	users, err := s.api.ListUsers(apiCtx, role)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users = withoutNil(users)
	slices.SortStableFunc(users, func(a, b *entity.User) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return users, nil
}

// ChangeRole refuses to change the caller's own role so an admin cannot lock themself out.
func (s *adminService) ChangeRole(ctx context.Context, session *entity.Session, userID string, role entity.Role) (*entity.User, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}
	if userID == session.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("cannot change your own role")
	}

	user, err := s.api.UpdateUserRole(apiCtx, userID, role)
	if err != nil {
		return nil, errors.Wrap(err, "update user role")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("User role changed",
		slog.String("user_id", userID),
		slog.String("role", role.String()),
		slog.String("by", session.UserID),
	)

	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, session *entity.Session, userID string) error {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if userID == session.UserID {
		return domainerrors.ErrForbidden.WithDetails("cannot delete your own account")
	}

	if err := s.api.DeleteUser(apiCtx, userID); err != nil {
		return errors.Wrap(err, "delete user")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("User deleted",
		slog.String("user_id", userID),
		slog.String("by", session.UserID),
	)

	return nil
}

// ListOrders returns every order, or only those in status when it is set.
func (s *adminService) ListOrders(ctx context.Context, session *entity.Session, status entity.OrderStatus) ([]*entity.Order, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	orders, err := s.api.ListAllOrders(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	if status != "" {
		orders = slices.DeleteFunc(orders, func(o *entity.Order) bool {
			return o.Status != status
		})
	}

	return newestFirst(orders), nil
}
