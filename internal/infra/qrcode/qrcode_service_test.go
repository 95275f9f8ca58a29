package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"quickmart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.errorCorrectionLevel, "secret")

			png, err := svc.GenerateHandoffQR("order-1", "vendor-1")
			require.NoError(t, err)
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
		})
	}
}

// encode returns what a scanner would read from a code issued at issuedAt.
func encode(t *testing.T, svc *qrcodeService, payload service.HandoffPayload) string {
	t.Helper()

	data, err := json.Marshal(handoffCode{HandoffPayload: payload, Signature: svc.sign(payload)})
	require.NoError(t, err)

	return string(data)
}

func TestQRCodeService_ParseHandoffQR(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newQRCodeService(256, "M", "secret")
	svc.now = func() time.Time { return now }

	valid := service.HandoffPayload{Type: handoffType, OrderID: "o-1", VendorID: "v-1", IssuedAt: now.Add(-time.Hour).Unix()}

	t.Run("valid", func(t *testing.T) {
		payload, err := svc.ParseHandoffQR(encode(t, svc, valid))
		require.NoError(t, err)
		assert.Equal(t, "o-1", payload.OrderID)
		assert.Equal(t, "v-1", payload.VendorID)
	})

	t.Run("tampered order", func(t *testing.T) {
		var code handoffCode
		require.NoError(t, json.Unmarshal([]byte(encode(t, svc, valid)), &code))
		code.OrderID = "o-2"
		data, err := json.Marshal(code)
		require.NoError(t, err)

		_, err = svc.ParseHandoffQR(string(data))
		assert.ErrorContains(t, err, "signature")
	})

	t.Run("other secret", func(t *testing.T) {
		other := newQRCodeService(256, "M", "other")
		_, err := svc.ParseHandoffQR(encode(t, other, valid))
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old := valid
		old.IssuedAt = now.Add(-25 * time.Hour).Unix()

		_, err := svc.ParseHandoffQR(encode(t, svc, old))
		assert.ErrorContains(t, err, "expired")
	})

	t.Run("wrong type", func(t *testing.T) {
		wrong := valid
		wrong.Type = "subscription"

		_, err := svc.ParseHandoffQR(encode(t, svc, wrong))
		assert.ErrorContains(t, err, "invalid QR code type")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := svc.ParseHandoffQR("hello")
		assert.Error(t, err)
	})
}
