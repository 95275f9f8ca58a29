package service

// HandoffPayload is encoded in the QR code a vendor shows the courier at pickup.
type HandoffPayload struct {
	Type     string `json:"type"`
	OrderID  string `json:"order_id"`
	VendorID string `json:"vendor_id"`
	IssuedAt int64  `json:"issued_at"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateHandoffQR renders the pickup code of an order as PNG
	GenerateHandoffQR(orderID, vendorID string) ([]byte, error)

	// ParseHandoffQR parses scanned QR data back into its payload
	ParseHandoffQR(qrData string) (*HandoffPayload, error)
}
