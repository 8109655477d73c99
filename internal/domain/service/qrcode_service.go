package service

// QRCodeService renders QR codes for certificates and pickup handovers.
type QRCodeService interface {
	// Encode renders content as a PNG image.
	Encode(content string) ([]byte, error)

	// Link returns the scannable URL for path under the configured base URL,
	// or path unchanged when no base URL is set.
	Link(path string) string
}
