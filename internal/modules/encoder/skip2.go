package encoder

import (
	"context"
	"fmt"
	"image"

	"generate-qr/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

// Skip2Encoder renders symbols with github.com/skip2/go-qrcode.
type Skip2Encoder struct{}

var skip2Levels = map[models.ErrorCorrection]qrcode.RecoveryLevel{
	models.LevelL: qrcode.Low,
	models.LevelM: qrcode.Medium,
	models.LevelQ: qrcode.High,
	models.LevelH: qrcode.Highest,
}

// Encode builds the smallest symbol holding data at cfg.Level and rasterizes it
// with a four module quiet zone.
//
// Returns:
//   - The rendered image, or an error if cfg is invalid or data does not fit any version.
func (e *Skip2Encoder) Encode(ctx context.Context, data string, cfg models.RenderConfig) (image.Image, error) {
	if err := validate(ctx, data, cfg); err != nil {
		return nil, err
	}

	qr, err := qrcode.New(data, skip2Levels[cfg.Level])
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	qr.ForegroundColor = cfg.Foreground
	qr.BackgroundColor = cfg.Background

	// A negative size makes each module -size pixels wide, border included.
	return qr.Image(-cfg.ModuleSize), nil
}
