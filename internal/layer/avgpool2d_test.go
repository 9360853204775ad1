package layer

import (
	"math"
	"testing"
)

func TestAvgPool2DForward(t *testing.T) {
	// Test 2x2 average pooling with stride 2, no padding
	pool := NewAvgPool2D(2, 2)

	// Input: 4x4 = 16 values
	// 1  2  3  4
	// 5  6  7  8
	// 9  10 11 12
	// 13 14 15 16
	input := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	output, outH, outW := pool.Forward(input, 1, 4, 4)

	// (1+2+5+6)/4 = 3.5, (3+4+7+8)/4 = 5.5
	// (9+10+13+14)/4 = 11.5, (11+12+15+16)/4 = 13.5
	expected := []float64{3.5, 5.5, 11.5, 13.5}

	if outH != 2 || outW != 2 || len(output) != 4 {
		t.Fatalf("Output = %dx%d (len %d), expected 2x2", outH, outW, len(output))
	}

	for i := range expected {
		if math.Abs(output[i]-expected[i]) > 1e-12 {
			t.Errorf("Output[%d] = %f, expected %f", i, output[i], expected[i])
		}
	}
}

func TestAvgPool2DForwardOddDropsLastRow(t *testing.T) {
	pool := NewAvgPool2D(2, 2)

	// 3x3 input floors to a single 2x2 window
	input := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	output, outH, outW := pool.Forward(input, 1, 3, 3)

	if outH != 1 || outW != 1 {
		t.Fatalf("Output = %dx%d, expected 1x1", outH, outW)
	}
	if output[0] != 3 {
		t.Errorf("Output[0] = %f, expected 3", output[0])
	}
}

func TestAvgPool2DForwardMultiPlane(t *testing.T) {
	pool := NewAvgPool2D(2, 2)

	input := []float64{
		1, 1, 1, 1, // plane 0
		2, 4, 6, 8, // plane 1
	}
	output, _, _ := pool.Forward(input, 2, 2, 2)

	if output[0] != 1 || output[1] != 5 {
		t.Errorf("Output = %v, expected [1 5]", output)
	}
}

func TestAvgPool2DOutputSize(t *testing.T) {
	tests := []struct {
		name           string
		kernel, stride int
		height, width  int
		wantH, wantW   int
	}{
		{"Even", 2, 2, 4, 6, 2, 3},
		{"OddFloors", 2, 2, 5, 7, 2, 3},
		{"Overlapping", 3, 1, 5, 5, 3, 3},
		{"TooSmall", 3, 1, 2, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, w := NewAvgPool2D(tt.kernel, tt.stride).OutputSize(tt.height, tt.width)
			if h != tt.wantH || w != tt.wantW {
				t.Errorf("OutputSize(%d, %d) = %dx%d, want %dx%d", tt.height, tt.width, h, w, tt.wantH, tt.wantW)
			}
		})
	}
}

func TestAvgPool2DForwardTooSmallPanics(t *testing.T) {
	pool := NewAvgPool2D(2, 2)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for input smaller than the window")
		}
	}()

	pool.Forward([]float64{1, 2}, 1, 1, 2)
}

func TestAvgPool2DForwardLengthMismatch(t *testing.T) {
	pool := NewAvgPool2D(2, 2)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for length mismatch")
		}
	}()

	pool.Forward([]float64{1, 2, 3}, 1, 2, 2)
}
