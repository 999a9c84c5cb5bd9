package request

// CheckInRequest is what the scanner app posts after reading a badge.
type CheckInRequest struct {
	QRCode  string `json:"qrCode" binding:"required"`
	EventID int64  `json:"eventId" binding:"required"`
}
