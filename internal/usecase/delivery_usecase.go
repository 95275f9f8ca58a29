package usecase

import (
	"context"

	"quickmart/internal/domain/entity"
)

// DeliveryDashboard is the courier landing page.
type DeliveryDashboard struct {
	Deliveries []*entity.DeliveryAssignment `json:"deliveries"`
	Warnings   []string                     `json:"warnings,omitempty"`
}

// DeliveryUsecase covers a courier's assigned orders.
type DeliveryUsecase interface {
	// Dashboard lists open assignments nearest first. Distances are measured from
	// origin when given, otherwise from each order's last reported location.
	Dashboard(ctx context.Context, session *entity.Session, origin *entity.GeoPoint) (*DeliveryDashboard, error)

	UpdateStatus(ctx context.Context, session *entity.Session, orderID string, status entity.OrderStatus) (*entity.Order, error)

	ReportLocation(ctx context.Context, session *entity.Session, orderID string, point entity.GeoPoint) error

	// ScanHandoff verifies a vendor handoff code and marks the order picked up.
	ScanHandoff(ctx context.Context, session *entity.Session, code string) (*entity.Order, error)
}
