// Package qrcode renders the device pairing QR code shown to parents.
package qrcode

import (
	"encoding/json"

	"guardian/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const pairingType = "device_pairing"

// ErrInvalidPairingCode is returned when scanned content is not a pairing code.
var ErrInvalidPairingCode = errors.New("invalid pairing code")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	serverURL            string
}

// PairingData is the JSON payload encoded in a pairing QR code.
type PairingData struct {
	TeenID    string `json:"teen_id"`
	Type      string `json:"type"`
	ServerURL string `json:"server_url,omitempty"`
}

// NewQRCodeService creates a QR code service. serverURL tells the teen app
// where to post its samples and may be empty.
func NewQRCodeService(size int, errorCorrectionLevel, serverURL string) service.QRCodeService {
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
		serverURL:            serverURL,
	}
}

// GeneratePairingQR renders a PNG carrying the teen ID.
func (s *qrcodeService) GeneratePairingQR(teenID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(PairingData{
		TeenID:    teenID.String(),
		Type:      pairingType,
		ServerURL: s.serverURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pairing data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePairingQR extracts the teen ID from scanned QR content.
func (s *qrcodeService) ParsePairingQR(qrData string) (uuid.UUID, error) {
	var data PairingData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidPairingCode, err.Error())
	}

	if data.Type != pairingType {
		return uuid.Nil, errors.Wrapf(ErrInvalidPairingCode, "type %q", data.Type)
	}

	teenID, err := uuid.Parse(data.TeenID)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidPairingCode, "teen id is not a uuid")
	}

	return teenID, nil
}
