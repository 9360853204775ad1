package metric

import (
	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/ssim"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
)

// SSIM computes the single-scale structural similarity index between x and
// y, averaged over channels. Inputs follow the same rules as MultiScaleSSIM
// except that only the kernel side bounds the image size. ScaleWeights is
// validated but otherwise unused.
func SSIM(x, y *tensor.Tensor, opts Options) (*Result, error) {
	s, _, err := SSIMFull(x, y, opts)
	return s, err
}

// SSIMFull is SSIM that also returns the contrast-structure term.
func SSIMFull(x, y *tensor.Tensor, opts Options) (ssimRes, csRes *Result, err error) {
	in, err := prepare(x, y, opts, 1)
	if err != nil {
		return nil, nil, err
	}
	batch, channels := in.x.Dim(0), in.x.Dim(1)

	if in.x.IsComplex() {
		xRe, xIm, err := tensor.Split(in.x)
		if err != nil {
			return nil, nil, err
		}
		yRe, yIm, err := tensor.Split(in.y)
		if err != nil {
			return nil, nil, err
		}
		ssimVal, cs, err := ssim.PerChannelComplex(xRe, xIm, yRe, yIm, in.kernel, opts.K1, opts.K2)
		if err != nil {
			return nil, nil, err
		}
		ssimRes = &Result{Kind: Complex, Complex: opts.Reduction.reduceComplex(channelMeanComplex(ssimVal, batch, channels))}
		csRes = &Result{Kind: Complex, Complex: opts.Reduction.reduceComplex(channelMeanComplex(cs, batch, channels))}
		return ssimRes, csRes, nil
	}

	ssimVal, cs, err := ssim.PerChannel(in.x, in.y, in.kernel, opts.K1, opts.K2)
	if err != nil {
		return nil, nil, err
	}
	ssimRes = &Result{Kind: Real, Real: opts.Reduction.reduceReal(channelMean(ssimVal, batch, channels))}
	csRes = &Result{Kind: Real, Real: opts.Reduction.reduceReal(channelMean(cs, batch, channels))}
	return ssimRes, csRes, nil
}

func channelMean(v []float64, batch, channels int) []float64 {
	out := make([]float64, batch)
	for b := range out {
		out[b] = stat.Mean(v[b*channels:(b+1)*channels], nil)
	}
	return out
}

func channelMeanComplex(v []complex128, batch, channels int) []complex128 {
	out := make([]complex128, batch)
	for b := range out {
		var sum complex128
		for _, z := range v[b*channels : (b+1)*channels] {
			sum += z
		}
		out[b] = sum / complex(float64(channels), 0)
	}
	return out
}
