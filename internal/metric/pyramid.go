package metric

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/layer"
	"github.com/FlavioCFOliveira/GoSSIM/internal/ssim"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

var pool2x2 = layer.NewAvgPool2D(2, 2)

// downsample halves both spatial sides of a canonical real tensor.
// Odd sides are first padded on the top and left with replicated edge
// samples; a single amount is used for both axes, so an even side next to an
// odd one becomes odd and its last row or column is dropped by the pooling.
func downsample(t *tensor.Tensor) *tensor.Tensor {
	planes, h, w := t.Planes()
	pad := max(h%2, w%2)

	stages := layer.NewSequential(layer.NewReplicationPad2D(pad, 0, pad, 0), pool2x2)
	pooled, oh, ow := stages.Forward(t.Data(), planes, h, w)

	out, err := tensor.New(pooled, t.Dim(0), t.Dim(1), oh, ow)
	if err != nil {
		panic("metric: downsample produced an inconsistent tensor: " + err.Error())
	}
	return out
}

// multiScaleReal runs the pyramid on canonical real tensors and returns one
// score per batch item.
func multiScaleReal(x, y *tensor.Tensor, k *mat.Dense, weights []float64, k1, k2 float64) ([]float64, error) {
	levels := len(weights)
	side, _ := k.Dims()
	if err := validate.PyramidSize(x.Dim(2), x.Dim(3), side, levels); err != nil {
		return nil, err
	}

	// terms[i] holds cs of level i, except the coarsest which holds ssim.
	terms := make([][]float64, levels)
	for i := 0; i < levels; i++ {
		if i > 0 {
			x = downsample(x)
			y = downsample(y)
		}
		ssimVal, cs, err := ssim.PerChannel(x, y, k, k1, k2)
		if err != nil {
			return nil, err
		}
		if i == levels-1 {
			terms[i] = ssimVal
		} else {
			terms[i] = cs
		}
	}

	return combineReal(terms, weights, x.Dim(0), x.Dim(1)), nil
}

// combineReal computes prod_i max(term_i, 0)^w_i per plane and averages the
// planes of each batch item.
func combineReal(terms [][]float64, weights []float64, batch, channels int) []float64 {
	prod := make([]float64, batch*channels)
	for p := range prod {
		prod[p] = 1
	}
	for i, level := range terms {
		for p, v := range level {
			prod[p] *= math.Pow(math.Max(v, 0), weights[i])
		}
	}

	return channelMean(prod, batch, channels)
}

// multiScaleComplex runs the pyramid on canonical complex tensors. Real and
// imaginary parts are padded and pooled separately at each level.
func multiScaleComplex(x, y *tensor.Tensor, k *mat.Dense, weights []float64, k1, k2 float64) ([]complex128, error) {
	levels := len(weights)
	side, _ := k.Dims()
	if err := validate.PyramidSize(x.Dim(2), x.Dim(3), side, levels); err != nil {
		return nil, err
	}

	xRe, xIm, err := tensor.Split(x)
	if err != nil {
		return nil, err
	}
	yRe, yIm, err := tensor.Split(y)
	if err != nil {
		return nil, err
	}

	terms := make([][]complex128, levels)
	for i := 0; i < levels; i++ {
		if i > 0 {
			xRe, xIm = downsample(xRe), downsample(xIm)
			yRe, yIm = downsample(yRe), downsample(yIm)
		}
		ssimVal, cs, err := ssim.PerChannelComplex(xRe, xIm, yRe, yIm, k, k1, k2)
		if err != nil {
			return nil, err
		}
		if i == levels-1 {
			terms[i] = ssimVal
		} else {
			terms[i] = cs
		}
	}

	return combineComplex(terms, weights, x.Dim(0), x.Dim(1)), nil
}

// combineComplex combines per-level complex terms in polar form: both parts
// are clamped at zero, magnitudes are raised to their weight and multiplied,
// phases are scaled by their weight and summed. Planes of each batch item
// are then averaged component-wise.
func combineComplex(terms [][]complex128, weights []float64, batch, channels int) []complex128 {
	planes := batch * channels
	mag := make([]float64, planes)
	phase := make([]float64, planes)
	for p := range mag {
		mag[p] = 1
	}
	for i, level := range terms {
		w := weights[i]
		for p, z := range level {
			re := math.Max(real(z), 0)
			im := math.Max(imag(z), 0)
			mag[p] *= math.Pow(math.Sqrt(re*re+im*im), w)
			phase[p] += math.Atan2(im, re) * w
		}
	}

	re := make([]float64, planes)
	im := make([]float64, planes)
	for p := range mag {
		re[p] = mag[p] * math.Cos(phase[p])
		im[p] = mag[p] * math.Sin(phase[p])
	}

	reMean := channelMean(re, batch, channels)
	imMean := channelMean(im, batch, channels)
	scores := make([]complex128, batch)
	for b := range scores {
		scores[b] = complex(reMean[b], imMean[b])
	}
	return scores
}
