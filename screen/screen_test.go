package screen

import (
	"errors"
	"math"
	"testing"
)

func TestStatic(t *testing.T) {
	w, h, err := Static{Width: 1920, Height: 1080}.Resolution()
	if err != nil || w != 1920 || h != 1080 {
		t.Errorf("Static.Resolution() = %d, %d, %v, want 1920, 1080, nil", w, h, err)
	}
	if _, _, err := (Static{}).Resolution(); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("zero Static error = %v, want %v", err, ErrNoDisplay)
	}
}

func TestFitScale(t *testing.T) {
	hd := Static{Width: 1920, Height: 1080}

	tests := []struct {
		name   string
		w, h   int
		margin float64
		want   float64
	}{
		{"already fits", 640, 480, 1, 1},
		{"too wide", 3840, 1000, 1, 0.5},
		{"too tall", 1000, 2160, 1, 0.5},
		{"margin", 1920, 1080, 0.9, 0.9},
		{"margin out of range", 3840, 2160, 2, 0.5},
		{"NaN margin", 3840, 2160, math.NaN(), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitScale(tt.w, tt.h, hd, tt.margin)
			if err != nil {
				t.Fatalf("FitScale() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FitScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitScaleErrors(t *testing.T) {
	if _, err := FitScale(0, 10, Static{Width: 1, Height: 1}, 1); err == nil {
		t.Error("FitScale() accepted an empty canvas")
	}

	errQuery := errors.New("query failed")
	p := ProviderFunc(func() (int, int, error) { return 0, 0, errQuery })
	if _, err := FitScale(10, 10, p, 1); !errors.Is(err, errQuery) {
		t.Errorf("FitScale() error = %v, want %v", err, errQuery)
	}
}

func TestPrimaryIsProvider(t *testing.T) {
	var _ Provider = Primary()
}
