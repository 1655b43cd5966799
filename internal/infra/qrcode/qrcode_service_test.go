package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"pixelforge/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQRConfig(size int, level string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultQRSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateImageShareQR(t *testing.T) {
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
			svc := NewQRCodeService(newTestQRConfig(tt.size, "M"))

			qrBytes, err := svc.GenerateImageShareQR("https://pixelforge.example.com/files/abc.png")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateImageShareQR_InvalidURL(t *testing.T) {
	svc := NewQRCodeService(newTestQRConfig(256, "M"))

	for _, input := range []string{"", "https://example.com", strings.Repeat("a", maxImageURLLength+1)} {
		_, err := svc.GenerateImageShareQR(input)
		assert.Error(t, err, input)
	}
}

func TestQRCodeService_ParseImageShareQR(t *testing.T) {
	svc := NewQRCodeService(newTestQRConfig(256, "M"))

	valid, err := json.Marshal(ShareData{ImageURL: "/files/abc.png", Type: imageShareQRType})
	require.NoError(t, err)

	wrongType, err := json.Marshal(ShareData{ImageURL: "/files/abc.png", Type: "subscription"})
	require.NoError(t, err)

	missingURL, err := json.Marshal(ShareData{Type: imageShareQRType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid payload", string(valid), "/files/abc.png", false},
		{"wrong type", string(wrongType), "", true},
		{"missing url", string(missingURL), "", true},
		{"not json", "not-json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseImageShareQR(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
