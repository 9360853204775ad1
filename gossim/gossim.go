// Package gossim computes multi-scale structural similarity (MS-SSIM)
// between images and exposes it as a training loss.
package gossim

import (
	"github.com/FlavioCFOliveira/GoSSIM/internal/imageio"
	"github.com/FlavioCFOliveira/GoSSIM/internal/loss"
	"github.com/FlavioCFOliveira/GoSSIM/internal/metric"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// Re-export common types and functions for easier access
type (
	Tensor             = tensor.Tensor
	Options            = metric.Options
	Result             = metric.Result
	Kind               = metric.Kind
	Reduction          = metric.Reduction
	ColorMode          = imageio.ColorMode
	PixelLoss          = loss.Loss
	MultiScaleSSIMLoss = loss.MultiScaleSSIMLoss
	SSIMLoss           = loss.SSIMLoss
	MixedLoss          = loss.MixedLoss
)

// ErrInvalidInput is wrapped by every validation error.
var ErrInvalidInput = validate.ErrInvalidInput

const (
	Real    = metric.Real
	Complex = metric.Complex

	ReductionNone = metric.ReductionNone
	ReductionMean = metric.ReductionMean
	ReductionSum  = metric.ReductionSum

	ColorRGB  = imageio.ColorRGB
	ColorGray = imageio.ColorGray
)

// Tensors
func NewTensor(data []float64, shape ...int) (*Tensor, error) {
	return tensor.New(data, shape...)
}

// NewComplexTensor interleaves re and im into a [batch, channel, height, width, 2] tensor.
func NewComplexTensor(re, im *Tensor) (*Tensor, error) {
	return tensor.NewComplex(re, im)
}

// Metrics
func DefaultOptions() Options {
	return metric.DefaultOptions()
}

func DefaultScaleWeights() []float64 {
	return metric.DefaultScaleWeights()
}

func ParseReduction(s string) (Reduction, error) {
	return metric.ParseReduction(s)
}

func MultiScaleSSIM(x, y *Tensor, opts Options) (*Result, error) {
	return metric.MultiScaleSSIM(x, y, opts)
}

func SSIM(x, y *Tensor, opts Options) (*Result, error) {
	return metric.SSIM(x, y, opts)
}

func SSIMFull(x, y *Tensor, opts Options) (ssim, cs *Result, err error) {
	return metric.SSIMFull(x, y, opts)
}

// Losses
func NewMultiScaleSSIMLoss(opts Options) (*MultiScaleSSIMLoss, error) {
	return loss.NewMultiScaleSSIMLoss(opts)
}

func NewSSIMLoss(opts Options) (*SSIMLoss, error) {
	return loss.NewSSIMLoss(opts)
}

func NewMixedLoss(alpha float64, pixel PixelLoss, opts Options) (*MixedLoss, error) {
	return loss.NewMixedLoss(alpha, pixel, opts)
}

var (
	MSE    = loss.MSE{}
	L1Loss = loss.L1Loss{}
)

func Huber(delta float64) PixelLoss {
	return loss.NewHuber(delta)
}

// Images
func LoadImage(path string, mode ColorMode, width, height int) (*Tensor, error) {
	return imageio.LoadTensor(path, mode, width, height)
}
