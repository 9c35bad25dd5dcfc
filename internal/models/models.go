package models

import (
	"fmt"
	"image/color"
	"strings"
)

// Invocation is a single generate request taken from the command line.
type Invocation struct {
	URL        string
	OutputPath string
}

// ErrorCorrection selects one of the four standard QR error correction levels.
type ErrorCorrection int

const (
	LevelL ErrorCorrection = iota // ~7% recovery
	LevelM                        // ~15% recovery
	LevelQ                        // ~25% recovery
	LevelH                        // ~30% recovery
)

func (l ErrorCorrection) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("ErrorCorrection(%d)", int(l))
}

// ParseErrorCorrection accepts a level letter, case-insensitive.
func ParseErrorCorrection(s string) (ErrorCorrection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("unknown error correction level %q (want L, M, Q or H)", s)
}

// RenderConfig carries everything an encoder needs besides the payload.
type RenderConfig struct {
	Level      ErrorCorrection
	Fit        bool // let the encoder pick the smallest version that holds the data
	Foreground color.Color
	Background color.Color
	ModuleSize int // pixels per module
}

// DefaultModuleSize matches the box size QR tooling commonly defaults to.
const DefaultModuleSize = 10

// DefaultRenderConfig is level Q, fit to data, black on white.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Level:      LevelQ,
		Fit:        true,
		Foreground: color.Black,
		Background: color.White,
		ModuleSize: DefaultModuleSize,
	}
}
