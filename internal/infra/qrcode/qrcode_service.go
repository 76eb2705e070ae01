// Package qrcode renders card verification QR codes with skip2/go-qrcode.
package qrcode

import (
	"net/url"
	"strings"

	"cardportal/config"
	"cardportal/internal/domain/service"
	"cardportal/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize      = 256
	defaultVerifyURL = "http://localhost:8080/cards"
)

type qrcodeService struct {
	size          int
	recoveryLevel qrcode.RecoveryLevel
	verifyBaseURL string
}

// NewQRCodeService builds the service from the qrcode and card config
// sections. Missing values fall back to 256px, level M and a localhost URL.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := strings.TrimRight(cfg.Card.VerifyBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultVerifyURL
	}

	return &qrcodeService{
		size:          size,
		recoveryLevel: recoveryLevel(level),
		verifyBaseURL: baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// VerificationURL is <verifyBaseURL>/<cardNumber>/verify.
func (s *qrcodeService) VerificationURL(cardNumber string) string {
	return s.verifyBaseURL + "/" + url.PathEscape(cardNumber) + "/verify"
}

// GenerateCardQR encodes the verification URL of cardNumber as a PNG.
func (s *qrcodeService) GenerateCardQR(cardNumber string) ([]byte, error) {
	if cardNumber == "" {
		return nil, errors.New("card number is empty")
	}

	code, err := qrcode.New(s.VerificationURL(cardNumber), s.recoveryLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode QR PNG")
	}

	return png, nil
}
