package impl

import (
	"io"
	"log/slog"
	"time"

	"pixelforge/config"
	"pixelforge/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     4,
			AccessTokenTTL: 30 * time.Minute,
		},
		Storage: &config.StorageConfig{
			UploadPrefix:     "uploads",
			PublicPathPrefix: "/files",
		},
		QRCode: &config.QRCodeConfig{
			BaseURL: "https://pixelforge.example.com/",
		},
	}
}

// eventOfType matches a published system event by type.
func eventOfType(eventType entity.EventType) any {
	return mock.MatchedBy(func(event *entity.SystemEvent) bool {
		return event != nil && event.Type == eventType
	})
}
