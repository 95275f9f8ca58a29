package qrcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	handoffType = "handoff"
	// handoffMaxAge bounds how long a printed or screenshotted code stays usable.
	handoffMaxAge = 24 * time.Hour
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	secret               []byte
	now                  func() time.Time
}

// handoffCode is the JSON encoded in the QR image.
type handoffCode struct {
	service.HandoffPayload
	Signature string `json:"sig"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.SecretKey.Session)
}

func newQRCodeService(size int, errorCorrectionLevel, secret string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		secret:               []byte(secret),
		now:                  time.Now,
	}
}

// GenerateHandoffQR renders a signed pickup code for the order as PNG
func (s *qrcodeService) GenerateHandoffQR(orderID, vendorID string) ([]byte, error) {
	payload := service.HandoffPayload{
		Type:     handoffType,
		OrderID:  orderID,
		VendorID: vendorID,
		IssuedAt: s.now().Unix(),
	}

	jsonData, err := json.Marshal(handoffCode{HandoffPayload: payload, Signature: s.sign(payload)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseHandoffQR checks type, signature and age of scanned data
func (s *qrcodeService) ParseHandoffQR(qrData string) (*service.HandoffPayload, error) {
	var code handoffCode
	if err := json.Unmarshal([]byte(qrData), &code); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if code.Type != handoffType {
		return nil, fmt.Errorf("invalid QR code type: %s", code.Type)
	}
	if code.OrderID == "" {
		return nil, fmt.Errorf("QR code has no order")
	}

	expected := s.sign(code.HandoffPayload)
	if !hmac.Equal([]byte(expected), []byte(code.Signature)) {
		return nil, fmt.Errorf("QR code signature mismatch")
	}

	issuedAt := time.Unix(code.IssuedAt, 0)
	if s.now().Sub(issuedAt) > handoffMaxAge {
		return nil, fmt.Errorf("QR code expired at %s", issuedAt.Add(handoffMaxAge).Format(time.RFC3339))
	}

	payload := code.HandoffPayload

	return &payload, nil
}

func (s *qrcodeService) sign(payload service.HandoffPayload) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload.Type))
	mac.Write([]byte{0})
	mac.Write([]byte(payload.OrderID))
	mac.Write([]byte{0})
	mac.Write([]byte(payload.VendorID))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(payload.IssuedAt, 10)))

	return hex.EncodeToString(mac.Sum(nil))
}
