package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateImageShareQR generates a PNG QR code pointing at an image's public URL
	GenerateImageShareQR(imageURL string) ([]byte, error)

	// ParseImageShareQR parses QR code content and returns the image URL
	ParseImageShareQR(qrData string) (string, error)
}
