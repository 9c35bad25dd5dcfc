package encoder

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"

	"generate-qr/internal/models"
)

var (
	// ErrEmptyData is returned for a zero-length payload.
	ErrEmptyData = errors.New("no data to encode")
	// ErrFixedVersion is returned when fit is disabled; neither backend can pin a symbol version.
	ErrFixedVersion = errors.New("fixed symbol version is not supported, fit must be enabled")
	// ErrUnknownEngine is returned by New for an unregistered engine name.
	ErrUnknownEngine = errors.New("unknown encoder engine")
	// ErrBadModuleSize is returned when the module size is outside 1..MaxModuleSize.
	ErrBadModuleSize = errors.New("module size out of range")
	// ErrUnknownLevel is returned for an error correction level other than L, M, Q or H.
	ErrUnknownLevel = errors.New("unknown error correction level")
)

const (
	// DefaultEngine is used when no engine is requested.
	DefaultEngine = "skip2"
	// MaxModuleSize is the largest pixels-per-module value; the yeqown writer stores it in a uint8.
	MaxModuleSize = 255
)

// Encoder turns a payload into a rasterized QR symbol.
type Encoder interface {
	Encode(ctx context.Context, data string, cfg models.RenderConfig) (image.Image, error)
}

var engines = map[string]func() Encoder{
	"skip2":  func() Encoder { return &Skip2Encoder{} },
	"yeqown": func() Encoder { return &YeqownEncoder{} },
}

// New returns the encoder registered under name.
func New(name string) (Encoder, error) {
	ctor, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownEngine, name, Engines())
	}
	return ctor(), nil
}

// Engines lists registered engine names in sorted order.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validate checks the parts of a request every backend shares.
func validate(ctx context.Context, data string, cfg models.RenderConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if data == "" {
		return ErrEmptyData
	}
	if !cfg.Fit {
		return ErrFixedVersion
	}
	if cfg.ModuleSize < 1 || cfg.ModuleSize > MaxModuleSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrBadModuleSize, cfg.ModuleSize, MaxModuleSize)
	}
	if cfg.Level < models.LevelL || cfg.Level > models.LevelH {
		return fmt.Errorf("%w: %v", ErrUnknownLevel, cfg.Level)
	}
	return nil
}
