// Package validate checks metric inputs before any computation starts.
package validate

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("gossim: invalid input")

// maxLevels bounds the pyramid depth so the minimum size stays representable.
const maxLevels = 30

// Errorf returns an error wrapping ErrInvalidInput with a formatted message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// KernelSize checks that a kernel side is a positive odd number.
func KernelSize(size int) error {
	if size < 1 {
		return Errorf("kernel size must be positive, got %d", size)
	}
	if size%2 == 0 {
		return Errorf("kernel size must be odd, got %d", size)
	}
	return nil
}

// Sigma checks the Gaussian standard deviation.
func Sigma(sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return Errorf("kernel sigma must be a finite positive number, got %v", sigma)
	}
	return nil
}

// DataRange checks the value range the inputs are expressed in.
func DataRange(dataRange float64) error {
	if math.IsNaN(dataRange) || math.IsInf(dataRange, 0) || dataRange <= 0 {
		return Errorf("data range must be a finite positive number, got %v", dataRange)
	}
	return nil
}

// ScaleWeights checks a per-level weight vector.
func ScaleWeights(weights []float64) error {
	if len(weights) == 0 {
		return Errorf("scale weights must not be empty")
	}
	if len(weights) > maxLevels {
		return Errorf("at most %d scale weights are supported, got %d", maxLevels, len(weights))
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return Errorf("scale weight %d must be a finite positive number, got %v", i, w)
		}
	}
	return nil
}

// Shapes checks that two tensors have the same shape and a supported rank.
// A rank 5 shape must carry (real, imaginary) pairs on its last axis.
func Shapes(x, y []int) error {
	if len(x) != len(y) {
		return Errorf("input ranks differ: %v vs %v", x, y)
	}
	for i := range x {
		if x[i] != y[i] {
			return Errorf("input shapes differ: %v vs %v", x, y)
		}
	}
	if len(x) < 2 || len(x) > 5 {
		return Errorf("input rank must be between 2 and 5, got %d (shape %v)", len(x), x)
	}
	if len(x) == 5 && x[4] != 2 {
		return Errorf("complex input must have a last dimension of 2, got shape %v", x)
	}
	for _, d := range x {
		if d <= 0 {
			return Errorf("input dimensions must be positive, got shape %v", x)
		}
	}
	return nil
}

// Range checks that every sample is finite and lies in [lo, hi].
func Range(data []float64, lo, hi float64) error {
	for i, v := range data {
		if math.IsNaN(v) || v < lo || v > hi {
			return Errorf("sample %d = %v is outside the data range [%v, %v]", i, v, lo, hi)
		}
	}
	return nil
}

// MinSize returns the smallest spatial side a pyramid of the given depth
// accepts: (kernelSize - 1) * 2^(levels-1) + 1. The result saturates at
// math.MaxInt instead of overflowing.
func MinSize(kernelSize, levels int) int {
	scale := 1 << (levels - 1)
	if kernelSize-1 > (math.MaxInt-1)/scale {
		return math.MaxInt
	}
	return (kernelSize-1)*scale + 1
}

// PyramidSize checks that both spatial sides are large enough for the pyramid.
func PyramidSize(height, width, kernelSize, levels int) error {
	if levels < 1 || levels > maxLevels {
		return Errorf("pyramid depth must be between 1 and %d, got %d", maxLevels, levels)
	}
	minSize := MinSize(kernelSize, levels)
	if height < minSize || width < minSize {
		return Errorf("image of size %dx%d is too small for %d scales and kernel size %d; minimum required size is %d",
			height, width, levels, kernelSize, minSize)
	}
	return nil
}
