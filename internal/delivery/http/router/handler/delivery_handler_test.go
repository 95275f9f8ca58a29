package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	mockUsecase "quickmart/internal/mocks/usecase"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func courierSession() *entity.Session {
	return &entity.Session{ID: uuid.New(), UserID: "d-1", Role: entity.RoleDelivery, Token: "up"}
}

func TestDeliveryHandler_Dashboard(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantOrigin *entity.GeoPoint
		wantStatus int
	}{
		{name: "without origin", target: "/api/v1/delivery/dashboard", wantStatus: http.StatusOK},
		{
			name:       "with origin",
			target:     "/api/v1/delivery/dashboard?lat=51.5&lng=-0.12",
			wantOrigin: &entity.GeoPoint{Lat: 51.5, Lng: -0.12},
			wantStatus: http.StatusOK,
		},
		{name: "half an origin", target: "/api/v1/delivery/dashboard?lat=51.5", wantStatus: http.StatusBadRequest},
		{name: "not a number", target: "/api/v1/delivery/dashboard?lat=north&lng=1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deliveryUC := mockUsecase.NewMockDeliveryUsecase(t)
			h := NewDeliveryHandler(DeliveryHandlerParams{DeliveryUC: deliveryUC})
			session := courierSession()
			c, rec := newContext(http.MethodGet, tt.target, "")
			signedIn(c, session)

			if tt.wantStatus == http.StatusOK {
				deliveryUC.EXPECT().Dashboard(mock.Anything, session, tt.wantOrigin).
					Return(&usecase.DeliveryDashboard{Deliveries: []*entity.DeliveryAssignment{}}, nil)
			}

			require.NoError(t, h.Dashboard(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeliveryHandler_ReportLocation(t *testing.T) {
	t.Run("coordinates are required", func(t *testing.T) {
		h := NewDeliveryHandler(DeliveryHandlerParams{DeliveryUC: mockUsecase.NewMockDeliveryUsecase(t)})
		c, rec := newContext(http.MethodPut, "/api/v1/delivery/orders/o-1/location", `{"lat":51.5}`)
		signedIn(c, courierSession())

		require.NoError(t, h.ReportLocation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero is a coordinate", func(t *testing.T) {
		deliveryUC := mockUsecase.NewMockDeliveryUsecase(t)
		h := NewDeliveryHandler(DeliveryHandlerParams{DeliveryUC: deliveryUC})
		session := courierSession()
		c, rec := newContext(http.MethodPut, "/api/v1/delivery/orders/o-1/location", `{"lat":0,"lng":0}`)
		c.SetParamNames("id")
		c.SetParamValues("o-1")
		signedIn(c, session)

		deliveryUC.EXPECT().ReportLocation(mock.Anything, session, "o-1", entity.GeoPoint{}).Return(nil)

		require.NoError(t, h.ReportLocation(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestDeliveryHandler_ScanHandoff(t *testing.T) {
	deliveryUC := mockUsecase.NewMockDeliveryUsecase(t)
	h := NewDeliveryHandler(DeliveryHandlerParams{DeliveryUC: deliveryUC})
	session := courierSession()
	c, rec := newContext(http.MethodPost, "/api/v1/delivery/handoff", `{"code":"quickmart:handoff:o-1"}`)
	signedIn(c, session)

	deliveryUC.EXPECT().ScanHandoff(mock.Anything, session, "quickmart:handoff:o-1").
		Return(&entity.Order{ID: "o-1", Status: entity.OrderStatusPickedUp}, nil)

	require.NoError(t, h.ScanHandoff(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OrderStatusPickedUp, decodeData[entity.Order](t, rec).Status)
}
