package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareService("https://causes.example.org", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestShareService_ShareURL(t *testing.T) {
	service := NewShareService("https://causes.example.org/", 256, "M")
	causeID := uuid.New()

	url := service.ShareURL(causeID)
	assert.Equal(t, "https://causes.example.org/causes/"+causeID.String(), url)
}

func TestShareService_GenerateShareQR(t *testing.T) {
	service := NewShareService("https://causes.example.org", 256, "M")
	causeID := uuid.New()

	qrBytes, err := service.GenerateShareQR(causeID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestShareService_GenerateShareQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareService("https://causes.example.org", tt.size, "M")
			causeID := uuid.New()

			qrBytes, err := service.GenerateShareQR(causeID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
