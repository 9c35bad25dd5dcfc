package models

import (
	"image/color"
	"testing"
)

func TestParseErrorCorrection(t *testing.T) {
	tests := []struct {
		in        string
		expected  ErrorCorrection
		expectErr bool
	}{
		{in: "L", expected: LevelL},
		{in: "m", expected: LevelM},
		{in: " Q ", expected: LevelQ},
		{in: "h", expected: LevelH},
		{in: "X", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseErrorCorrection(tt.in)
			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got.String() != tt.expected.String() {
				t.Errorf("String() mismatch: %s vs %s", got, tt.expected)
			}
		})
	}
}

func TestDefaultRenderConfig(t *testing.T) {
	cfg := DefaultRenderConfig()
	if cfg.Level != LevelQ {
		t.Errorf("expected level Q, got %v", cfg.Level)
	}
	if !cfg.Fit {
		t.Errorf("expected fit enabled")
	}
	if cfg.Foreground != color.Black || cfg.Background != color.White {
		t.Errorf("expected black on white, got %v on %v", cfg.Foreground, cfg.Background)
	}
	if cfg.ModuleSize != DefaultModuleSize {
		t.Errorf("expected module size %d, got %d", DefaultModuleSize, cfg.ModuleSize)
	}
}
