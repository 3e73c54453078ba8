package service

import (
	"github.com/google/uuid"
)

// ShareService defines the interface for cause share link and QR generation
type ShareService interface {
	// GenerateShareQR generates a QR code image for a cause's public page
	GenerateShareQR(causeID uuid.UUID) ([]byte, error)

	// ShareURL returns the public page URL encoded into the QR code
	ShareURL(causeID uuid.UUID) string
}
