package export

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

const (
	// DefaultQRSize is the rendered image edge in pixels.
	DefaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

var (
	ErrSizeOutOfRange = errors.New("size must be between 128 and 1024")
	ErrInvalidLevel   = errors.New("level must be: low, medium, high, or highest")
)

// ParseRecoveryLevel maps a config/CLI level name onto a qrcode recovery
// level.
func ParseRecoveryLevel(name string) (qrcode.RecoveryLevel, error) {
	switch name {
	case "low":
		return qrcode.Low, nil
	case "", "medium":
		return qrcode.Medium, nil
	case "high":
		return qrcode.High, nil
	case "highest":
		return qrcode.Highest, nil
	default:
		return qrcode.Medium, ErrInvalidLevel
	}
}

// RenderQRPNG renders value as a PNG-encoded QR image.
func RenderQRPNG(value string, size int, level qrcode.RecoveryLevel) ([]byte, error) {
	if size == 0 {
		size = DefaultQRSize
	}
	if size < minQRSize || size > maxQRSize {
		return nil, ErrSizeOutOfRange
	}
	return qrcode.Encode(value, level, size)
}

// SaveQRPNG renders value and writes the image to filename. Best-effort: a
// failure is logged and returned, never fatal, and has no bearing on session
// or collection state.
func SaveQRPNG(value, filename string, size int, level qrcode.RecoveryLevel) error {
	png, err := RenderQRPNG(value, size, level)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("Failed to render QR code")
		return err
	}
	if err := os.WriteFile(filename, png, 0o644); err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("Failed to write QR image")
		return err
	}
	log.Info().Str("file", filename).Int("bytes", len(png)).Msg("QR image exported")
	return nil
}
