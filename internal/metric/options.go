// Package metric computes single- and multi-scale structural similarity
// between images or batches of images.
package metric

import (
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// ErrInvalidInput is returned (wrapped) for every rejected input.
var ErrInvalidInput = validate.ErrInvalidInput

// DefaultScaleWeights returns the five per-scale exponents from
// Wang, Simoncelli and Bovik, "Multiscale structural similarity for image
// quality assessment" (2003), finest scale first.
func DefaultScaleWeights() []float64 {
	return []float64{0.0448, 0.2856, 0.3001, 0.2363, 0.1333}
}

// Options configures the similarity metrics.
type Options struct {
	KernelSize   int       // Side of the Gaussian window, odd
	KernelSigma  float64   // Standard deviation of the Gaussian window
	DataRange    float64   // Maximum sample value (1 for [0,1] images, 255 for 8-bit)
	Reduction    Reduction // How per-item scores are reduced over the batch
	ScaleWeights []float64 // One exponent per pyramid level, finest first
	K1           float64   // Luminance stabilising constant
	K2           float64   // Contrast stabilising constant
}

// DefaultOptions returns the options of the reference MS-SSIM formulation.
func DefaultOptions() Options {
	return Options{
		KernelSize:   11,
		KernelSigma:  1.5,
		DataRange:    1.0,
		Reduction:    ReductionMean,
		ScaleWeights: DefaultScaleWeights(),
		K1:           0.01,
		K2:           0.03,
	}
}

// Validate checks every option that does not depend on the input images.
func (o Options) Validate() error {
	if err := validate.KernelSize(o.KernelSize); err != nil {
		return err
	}
	if err := validate.Sigma(o.KernelSigma); err != nil {
		return err
	}
	if err := validate.DataRange(o.DataRange); err != nil {
		return err
	}
	if err := o.Reduction.validate(); err != nil {
		return err
	}
	if err := validate.ScaleWeights(o.ScaleWeights); err != nil {
		return err
	}
	return nil
}

// Clone returns a copy that shares no memory with o.
func (o Options) Clone() Options {
	o.ScaleWeights = append([]float64(nil), o.ScaleWeights...)
	return o
}
