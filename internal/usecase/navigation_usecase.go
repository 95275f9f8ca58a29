package usecase

import "quickmart/internal/domain/entity"

// NavigationUsecase decides which view a role may see at a path.
type NavigationUsecase interface {
	// Resolve maps path to a view for role. An empty role is an anonymous visitor.
	Resolve(role entity.Role, path string) *entity.RouteDecision
}
