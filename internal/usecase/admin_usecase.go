package usecase

import (
	"context"

	"quickmart/internal/domain/entity"
)

// AdminDashboard is the back-office landing page.
type AdminDashboard struct {
	TotalUsers  int                 `json:"total_users"`
	UsersByRole map[entity.Role]int `json:"users_by_role"`
	OrderCount  int                 `json:"order_count"`
	Revenue     float64             `json:"revenue"`
	Analytics   *entity.Analytics   `json:"analytics,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// AdminUsecase covers back-office reads and user management.
type AdminUsecase interface {
	// Dashboard fetches its sections concurrently; failed sections become warnings.
	Dashboard(ctx context.Context, session *entity.Session) (*AdminDashboard, error)

	// ListUsers lists every user when role is empty.
	ListUsers(ctx context.Context, session *entity.Session, role entity.Role) ([]*entity.User, error)
	ChangeRole(ctx context.Context, session *entity.Session, userID string, role entity.Role) (*entity.User, error)
	// DeleteUser refuses to delete the caller's own account.
	DeleteUser(ctx context.Context, session *entity.Session, userID string) error
	ListOrders(ctx context.Context, session *entity.Session, status entity.OrderStatus) ([]*entity.Order, error)
}
