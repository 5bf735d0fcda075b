package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		want     float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
		{"at min", 0, 0, 1, 0},
		{"at max", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-14, 1e-12) {
		t.Error("values within eps should compare equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("values outside eps should not compare equal")
	}
	if !NearlyEqual(0, 0, 1e-12) {
		t.Error("zero should equal zero")
	}
	// Relative comparison for large magnitudes.
	if !NearlyEqual(1e12, 1e12+0.1, 1e-12) {
		t.Error("large values should compare with relative tolerance")
	}
	// Non-positive eps falls back to the default epsilon.
	if !NearlyEqual(1, 1, 0) {
		t.Error("zero eps should use default epsilon")
	}
	if NearlyEqual(1, 2, -1) {
		t.Error("negative eps should not make distinct values equal")
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 200 {
		t.Errorf("default sample rate: got %g, want 200", cfg.SampleRate)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(100))
	if cfg.SampleRate != 100 {
		t.Errorf("WithSampleRate: got %g, want 100", cfg.SampleRate)
	}

	// Invalid rates are ignored.
	cfg = ApplyProcessorOptions(WithSampleRate(-1))
	if cfg.SampleRate != 200 {
		t.Errorf("negative rate should keep default: got %g", cfg.SampleRate)
	}

	cfg = ApplyProcessorOptions(nil)
	if cfg.SampleRate != 200 {
		t.Errorf("nil option should keep default: got %g", cfg.SampleRate)
	}
}
