package impl

import (
	"context"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockSvc "quickmart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (*adminService, *mockSvc.MockAdminAPI, *entity.Session) {
	api := mockSvc.NewMockAdminAPI(t)
	svc := NewAdminService(api, discardLogger()).(*adminService)
	session := &entity.Session{ID: uuid.New(), UserID: "a-1", Role: entity.RoleAdmin, Token: "up"}

	return svc, api, session
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, api, session := createTestAdminService(t)
	analytics := &entity.Analytics{TotalOrders: 3}

	api.EXPECT().ListUsers(mock.Anything, entity.Role("")).Return([]*entity.User{
		{ID: "1", Role: entity.RoleCustomer},
		{ID: "2", Role: entity.RoleCustomer},
		{ID: "3", Role: entity.RoleVendor},
	}, nil)
	api.EXPECT().ListAllOrders(mock.Anything).Return([]*entity.Order{
		{ID: "o1", Status: entity.OrderStatusPending, Total: 100},
		{ID: "o2", Status: entity.OrderStatusPaid, Total: 12.5},
		{ID: "o3", Status: entity.OrderStatusDelivered, Total: 7.5},
	}, nil)
	api.EXPECT().GetAnalytics(mock.Anything).Return(analytics, nil)

	dashboard, err := svc.Dashboard(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.TotalUsers)
	assert.Equal(t, 2, dashboard.UsersByRole[entity.RoleCustomer])
	assert.Equal(t, 0, dashboard.UsersByRole[entity.RoleAdmin])
	assert.Equal(t, 3, dashboard.OrderCount)
	assert.InDelta(t, 20.0, dashboard.Revenue, 0.0001)
	assert.Same(t, analytics, dashboard.Analytics)
	assert.Empty(t, dashboard.Warnings)
}

func TestAdminService_Dashboard_SkipsNullEntries(t *testing.T) {
	svc, api, session := createTestAdminService(t)

	api.EXPECT().ListUsers(mock.Anything, entity.Role("")).Return([]*entity.User{nil, {ID: "1", Role: entity.RoleDelivery}}, nil)
	api.EXPECT().ListAllOrders(mock.Anything).Return([]*entity.Order{{ID: "o1", Status: entity.OrderStatusPaid, Total: 4}, nil}, nil)
	api.EXPECT().GetAnalytics(mock.Anything).Return(&entity.Analytics{}, nil)

	dashboard, err := svc.Dashboard(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.TotalUsers)
	assert.Equal(t, 1, dashboard.UsersByRole[entity.RoleDelivery])
	assert.Equal(t, 1, dashboard.OrderCount)
	assert.InDelta(t, 4.0, dashboard.Revenue, 0.0001)
}

func TestAdminService_Dashboard_FallsBackToAnalytics(t *testing.T) {
	svc, api, session := createTestAdminService(t)

	api.EXPECT().ListUsers(mock.Anything, entity.Role("")).Return(nil, errors.New("boom"))
	api.EXPECT().ListAllOrders(mock.Anything).Return(nil, errors.New("boom"))
	api.EXPECT().GetAnalytics(mock.Anything).Return(&entity.Analytics{
		TotalUsers:  9,
		UsersByRole: map[string]int{"vendor": 4},
	}, nil)

	dashboard, err := svc.Dashboard(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, 9, dashboard.TotalUsers)
	assert.Equal(t, 4, dashboard.UsersByRole[entity.RoleVendor])
	assert.ElementsMatch(t, []string{"users unavailable", "orders unavailable"}, dashboard.Warnings)
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	svc, _, session := createTestAdminService(t)
	session.Role = entity.RoleVendor

	_, err := svc.Dashboard(context.Background(), session)

	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestAdminService_DeleteUser(t *testing.T) {
	svc, api, session := createTestAdminService(t)

	err := svc.DeleteUser(context.Background(), session, "a-1")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	api.EXPECT().DeleteUser(mock.Anything, "u-2").Return(nil)
	require.NoError(t, svc.DeleteUser(context.Background(), session, "u-2"))
}

func TestAdminService_ChangeRole(t *testing.T) {
	svc, api, session := createTestAdminService(t)

	_, err := svc.ChangeRole(context.Background(), session, "u-2", "owner")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.ChangeRole(context.Background(), session, "a-1", entity.RoleCustomer)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	api.EXPECT().UpdateUserRole(mock.Anything, "u-2", entity.RoleDelivery).Return(&entity.User{ID: "u-2", Role: entity.RoleDelivery}, nil)
	user, err := svc.ChangeRole(context.Background(), session, "u-2", entity.RoleDelivery)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDelivery, user.Role)
}

func TestAdminService_ListOrders_FiltersStatus(t *testing.T) {
	svc, api, session := createTestAdminService(t)

	api.EXPECT().ListAllOrders(mock.Anything).Return([]*entity.Order{
		{ID: "o1", Status: entity.OrderStatusPaid},
		{ID: "o2", Status: entity.OrderStatusShipped},
	}, nil)

	orders, err := svc.ListOrders(context.Background(), session, entity.OrderStatusShipped)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o2", orders[0].ID)
}
