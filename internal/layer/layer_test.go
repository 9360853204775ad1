package layer

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSequentialPadThenPool(t *testing.T) {
	// 3x3 plane, replicate one row and column on top/left, then pool 2x2.
	input := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	s := NewSequential(NewReplicationPad2D(1, 0, 1, 0), NewAvgPool2D(2, 2))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	out, h, w := s.Forward(input, 1, 3, 3)
	if h != 2 || w != 2 {
		t.Fatalf("output size = %dx%d, want 2x2", h, w)
	}
	want := []float64{1, 2.5, 5.5, 7}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSequentialEmpty(t *testing.T) {
	input := []float64{1, 2, 3, 4}
	out, h, w := NewSequential().Forward(input, 1, 2, 2)
	if h != 2 || w != 2 || &out[0] != &input[0] {
		t.Errorf("empty Sequential should pass input through")
	}
}

func TestSequentialImplementsLayer(t *testing.T) {
	var _ Layer = NewSequential()
	var _ Layer = NewAvgPool2D(2, 2)
	var _ Layer = NewReplicationPad2D(0, 0, 0, 0)
	var _ Layer = NewDepthwiseConv2D(mat.NewDense(1, 1, []float64{1}), 1, 0)
}
