// Package tensor provides the dense image tensor used by the metrics.
package tensor

import (
	"fmt"

	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// Tensor is a dense row-major array of float64 samples.
//
// Real images use the canonical shape [batch, channel, height, width].
// Complex images add a trailing axis of length 2 holding (real, imaginary).
type Tensor struct {
	shape []int
	data  []float64
}

// New creates a tensor over data with the given shape.
// The data slice is used directly, not copied.
func New(data []float64, shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, validate.Errorf("tensor shape must not be empty")
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, validate.Errorf("tensor dimensions must be positive, got %v", shape)
		}
		n *= d
	}
	if n != len(data) {
		return nil, validate.Errorf("shape %v needs %d samples, got %d", shape, n, len(data))
	}
	return &Tensor{shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros creates a zero-filled tensor.
func Zeros(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return &Tensor{shape: append([]int(nil), shape...), data: make([]float64, n)}
}

// Shape returns a copy of the tensor shape.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Dim returns the size of axis i.
func (t *Tensor) Dim(i int) int {
	return t.shape[i]
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Len returns the number of samples.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Data returns the backing slice.
func (t *Tensor) Data() []float64 {
	return t.data
}

// IsComplex reports whether the tensor is in canonical complex form.
func (t *Tensor) IsComplex() bool {
	return len(t.shape) == 5 && t.shape[4] == 2
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.Shape(), data: data}
}

// Scale returns a new tensor with every sample multiplied by factor.
func (t *Tensor) Scale(factor float64) *Tensor {
	out := t.Clone()
	for i := range out.data {
		out.data[i] *= factor
	}
	return out
}

// Reshape returns a view of the same samples with a new shape.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	return New(t.data, shape...)
}

// Planes returns the number of [height, width] planes in a canonical
// real tensor together with the plane size.
func (t *Tensor) Planes() (planes, height, width int) {
	r := len(t.shape)
	height, width = t.shape[r-2], t.shape[r-1]
	return len(t.data) / (height * width), height, width
}

// Item returns batch item b of a canonical tensor as a view.
func (t *Tensor) Item(b int) *Tensor {
	itemLen := len(t.data) / t.shape[0]
	shape := t.Shape()
	shape[0] = 1
	return &Tensor{shape: shape, data: t.data[b*itemLen : (b+1)*itemLen]}
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v", t.shape)
}
