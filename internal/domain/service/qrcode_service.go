package service

// QRCodeService renders card verification QR codes.
type QRCodeService interface {
	// GenerateCardQR returns a PNG that encodes the public verification URL
	// of cardNumber.
	GenerateCardQR(cardNumber string) ([]byte, error)

	// VerificationURL is the URL a scanned card resolves to.
	VerificationURL(cardNumber string) string
}
