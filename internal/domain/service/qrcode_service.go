package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses the QR code a teen's device scans to
// pair with its teen record.
type QRCodeService interface {
	// GeneratePairingQR renders a PNG QR code carrying the teen ID
	GeneratePairingQR(teenID uuid.UUID) ([]byte, error)

	// ParsePairingQR extracts the teen ID from scanned QR content
	ParsePairingQR(qrData string) (uuid.UUID, error)
}
