package encoder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"generate-qr/internal/models"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// quietZoneModules is the border width, in modules, around the symbol.
const quietZoneModules = 4

// YeqownEncoder renders symbols with github.com/yeqown/go-qrcode.
type YeqownEncoder struct{}

var yeqownLevels = map[models.ErrorCorrection]qrcode.EncodeOption{
	models.LevelL: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow),
	models.LevelM: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
	models.LevelQ: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
	models.LevelH: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest),
}

type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error { return nil }

// Encode builds a byte-mode symbol at cfg.Level and returns it as a decoded image.
func (e *YeqownEncoder) Encode(ctx context.Context, data string, cfg models.RenderConfig) (image.Image, error) {
	if err := validate(ctx, data, cfg); err != nil {
		return nil, err
	}

	qrc, err := qrcode.NewWith(data,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		yeqownLevels[cfg.Level],
	)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	// The standard writer only emits encoded bytes, so render to PNG in memory
	// and hand the decoded image to persistence like the other backend.
	buf := bufferCloser{Buffer: &bytes.Buffer{}}
	w := standard.NewWithWriter(buf,
		standard.WithQRWidth(uint8(cfg.ModuleSize)),
		standard.WithBorderWidth(quietZoneModules*cfg.ModuleSize),
		standard.WithFgColor(cfg.Foreground),
		standard.WithBgColor(cfg.Background),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	img, err := png.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered qr code: %w", err)
	}
	return img, nil
}
