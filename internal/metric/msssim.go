package metric

import (
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/kernel"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// MultiScaleSSIM computes the multi-scale structural similarity index
// between x and y.
//
// Inputs must share a shape of rank 2 to 5: [H, W], [C, H, W],
// [B, C, H, W], or [B, C, H, W, 2] for complex images whose last axis holds
// (real, imaginary) parts. Every sample must lie in [0, opts.DataRange].
// Both spatial sides must be at least
// (KernelSize-1) * 2^(len(ScaleWeights)-1) + 1.
//
// Real inputs yield a Real result, complex inputs a Complex one. With
// ReductionNone the result has one score per batch item.
//
// Negative per-level terms are clamped to zero before they are raised to
// their scale weight. NaN can still appear for degenerate inputs; raising
// K2 usually avoids it.
func MultiScaleSSIM(x, y *tensor.Tensor, opts Options) (*Result, error) {
	in, err := prepare(x, y, opts, len(opts.ScaleWeights))
	if err != nil {
		return nil, err
	}

	if in.x.IsComplex() {
		scores, err := multiScaleComplex(in.x, in.y, in.kernel, opts.ScaleWeights, opts.K1, opts.K2)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: Complex, Complex: opts.Reduction.reduceComplex(scores)}, nil
	}

	scores, err := multiScaleReal(in.x, in.y, in.kernel, opts.ScaleWeights, opts.K1, opts.K2)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: Real, Real: opts.Reduction.reduceReal(scores)}, nil
}

// prepared holds validated, canonical, [0,1]-scaled inputs and the shared
// Gaussian window.
type prepared struct {
	x, y   *tensor.Tensor
	kernel *mat.Dense
}

// prepare validates everything before any buffer is allocated: options,
// shapes, sample range, and the spatial size needed by a pyramid of the
// given depth (depth 1 only requires the kernel to fit).
func prepare(x, y *tensor.Tensor, opts Options, levels int) (*prepared, error) {
	if x == nil || y == nil {
		return nil, validate.Errorf("inputs must not be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := validate.Shapes(x.Shape(), y.Shape()); err != nil {
		return nil, err
	}
	if err := validate.Range(x.Data(), 0, opts.DataRange); err != nil {
		return nil, err
	}
	if err := validate.Range(y.Data(), 0, opts.DataRange); err != nil {
		return nil, err
	}

	cx, err := tensor.Canonical(x)
	if err != nil {
		return nil, err
	}
	cy, err := tensor.Canonical(y)
	if err != nil {
		return nil, err
	}

	if err := validate.PyramidSize(cx.Dim(2), cx.Dim(3), opts.KernelSize, levels); err != nil {
		return nil, err
	}

	k, err := kernel.Gaussian(opts.KernelSize, opts.KernelSigma)
	if err != nil {
		return nil, err
	}

	return &prepared{
		x:      divide(cx, opts.DataRange),
		y:      divide(cy, opts.DataRange),
		kernel: k,
	}, nil
}

// divide returns a copy of t with every sample divided by d.
func divide(t *tensor.Tensor, d float64) *tensor.Tensor {
	out := t.Clone()
	data := out.Data()
	for i := range data {
		data[i] /= d
	}
	return out
}
