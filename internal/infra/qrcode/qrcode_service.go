package qrcode

import (
	"encoding/json"
	"net/url"

	"pixelforge/config"
	"pixelforge/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultQRSize     = 256
	imageShareQRType  = "image_share"
	maxImageURLLength = 2048
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ShareData is the JSON payload encoded in an image share QR code.
type ShareData struct {
	ImageURL string `json:"image_url"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	level := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

// parseRecoveryLevel maps the L/M/Q/H letters to go-qrcode levels. Medium is the fallback.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
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

// GenerateImageShareQR encodes imageURL in a PNG QR code.
func (s *qrcodeService) GenerateImageShareQR(imageURL string) ([]byte, error) {
	if err := validateImageURL(imageURL); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ShareData{ImageURL: imageURL, Type: imageShareQRType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseImageShareQR decodes the payload of an image share QR code and returns the image URL.
func (s *qrcodeService) ParseImageShareQR(qrData string) (string, error) {
	var data ShareData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != imageShareQRType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if err := validateImageURL(data.ImageURL); err != nil {
		return "", err
	}

	return data.ImageURL, nil
}

func validateImageURL(imageURL string) error {
	if imageURL == "" {
		return errors.New("image URL is required")
	}
	if len(imageURL) > maxImageURLLength {
		return errors.New("image URL is too long")
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return errors.Wrap(err, "invalid image URL")
	}
	if u.Path == "" {
		return errors.New("image URL has no path")
	}

	return nil
}
