package qrcode

import (
	"fmt"
	"strings"

	"causes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type shareService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewShareService creates a new share QR service instance
func NewShareService(baseURL string, size int, errorCorrectionLevel string) service.ShareService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &shareService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ShareURL returns the public page URL for a cause
func (s *shareService) ShareURL(causeID uuid.UUID) string {
	return fmt.Sprintf("%s/causes/%s", s.baseURL, causeID)
}

// GenerateShareQR generates a QR code image pointing at the cause's public page
func (s *shareService) GenerateShareQR(causeID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareURL(causeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
