package validate

import (
	"errors"
	"math"
	"testing"
)

func TestKernelSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Odd", 11, false},
		{"One", 1, false},
		{"Even", 10, true},
		{"Zero", 0, true},
		{"Negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := KernelSize(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("KernelSize(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("KernelSize(%d) error does not wrap ErrInvalidInput: %v", tt.size, err)
			}
		})
	}
}

func TestSigmaAndDataRange(t *testing.T) {
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := Sigma(v); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Sigma(%v) = %v, want ErrInvalidInput", v, err)
		}
		if err := DataRange(v); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DataRange(%v) = %v, want ErrInvalidInput", v, err)
		}
	}
	if err := Sigma(1.5); err != nil {
		t.Errorf("Sigma(1.5) = %v", err)
	}
	if err := DataRange(255); err != nil {
		t.Errorf("DataRange(255) = %v", err)
	}
}

func TestScaleWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{"Default", []float64{0.0448, 0.2856, 0.3001, 0.2363, 0.1333}, false},
		{"Single", []float64{1}, false},
		{"Empty", nil, true},
		{"Zero", []float64{0.5, 0}, true},
		{"Negative", []float64{0.5, -0.5}, true},
		{"NaN", []float64{math.NaN()}, true},
		{"TooDeep", make([]float64, 31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ScaleWeights(tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("ScaleWeights(%v) error = %v, wantErr %v", tt.weights, err, tt.wantErr)
			}
		})
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []int
		wantErr bool
	}{
		{"Rank2", []int{8, 8}, []int{8, 8}, false},
		{"Rank4", []int{2, 3, 8, 8}, []int{2, 3, 8, 8}, false},
		{"Rank5", []int{1, 1, 8, 8, 2}, []int{1, 1, 8, 8, 2}, false},
		{"Rank5BadPair", []int{1, 1, 8, 8, 3}, []int{1, 1, 8, 8, 3}, true},
		{"Rank1", []int{8}, []int{8}, true},
		{"Rank6", []int{1, 1, 1, 8, 8, 2}, []int{1, 1, 1, 8, 8, 2}, true},
		{"Mismatch", []int{1, 1, 8, 8}, []int{1, 1, 8, 9}, true},
		{"RankMismatch", []int{8, 8}, []int{1, 8, 8}, true},
		{"ZeroDim", []int{1, 0, 8, 8}, []int{1, 0, 8, 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Shapes(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("Shapes(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
		})
	}
}

func TestRange(t *testing.T) {
	if err := Range([]float64{0, 0.5, 1}, 0, 1); err != nil {
		t.Errorf("Range in bounds = %v", err)
	}
	for _, data := range [][]float64{{-0.1}, {1.1}, {math.NaN()}, {math.Inf(1)}} {
		if err := Range(data, 0, 1); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Range(%v) = %v, want ErrInvalidInput", data, err)
		}
	}
}

func TestPyramidSize(t *testing.T) {
	if got := MinSize(11, 5); got != 161 {
		t.Fatalf("MinSize(11, 5) = %d, want 161", got)
	}
	if got := MinSize(7, 3); got != 25 {
		t.Fatalf("MinSize(7, 3) = %d, want 25", got)
	}

	if err := PyramidSize(161, 161, 11, 5); err != nil {
		t.Errorf("PyramidSize at minimum = %v", err)
	}
	if err := PyramidSize(160, 161, 11, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PyramidSize short height = %v, want ErrInvalidInput", err)
	}
	if err := PyramidSize(161, 160, 11, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PyramidSize short width = %v, want ErrInvalidInput", err)
	}
	if err := PyramidSize(1000, 1000, 11, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PyramidSize zero levels = %v, want ErrInvalidInput", err)
	}
}

func TestMinSizeSaturates(t *testing.T) {
	if got := MinSize(math.MaxInt/4, 5); got != math.MaxInt {
		t.Errorf("MinSize(MaxInt/4, 5) = %d, want MaxInt", got)
	}
	if got := MinSize(1<<25+1, 1); got != 1<<25+1 {
		t.Errorf("MinSize(1<<25+1, 1) = %d, want %d", got, 1<<25+1)
	}
	if err := PyramidSize(161, 161, math.MaxInt, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PyramidSize huge kernel = %v, want ErrInvalidInput", err)
	}
}
