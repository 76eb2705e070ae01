package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"cardportal/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}}
	cfg.Card.VerifyBaseURL = baseURL

	return cfg
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_VerificationURL(t *testing.T) {
	svc := NewQRCodeService(newTestConfig(256, "M", "https://cards.example.edu/cards/"))

	assert.Equal(t, "https://cards.example.edu/cards/2025COM0001/verify", svc.VerificationURL("2025COM0001"))
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.recoveryLevel)
	assert.Equal(t, defaultVerifyURL+"/X/verify", svc.VerificationURL("X"))
}

func TestQRCodeService_GenerateCardQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		svc := NewQRCodeService(newTestConfig(size, "M", "https://cards.example.edu/cards"))

		pngBytes, err := svc.GenerateCardQR("2025COM0001")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestQRCodeService_GenerateCardQR_EmptyNumber(t *testing.T) {
	svc := NewQRCodeService(newTestConfig(256, "M", ""))

	_, err := svc.GenerateCardQR("")

	assert.Error(t, err)
}
