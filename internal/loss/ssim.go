package loss

import (
	"github.com/FlavioCFOliveira/GoSSIM/internal/metric"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// MultiScaleSSIMLoss is 1 - MS-SSIM with a configuration fixed at
// construction. It holds no other state and is safe for concurrent use.
type MultiScaleSSIMLoss struct {
	opts metric.Options
}

// NewMultiScaleSSIMLoss validates opts and binds a copy of them.
func NewMultiScaleSSIMLoss(opts metric.Options) (*MultiScaleSSIMLoss, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &MultiScaleSSIMLoss{opts: opts.Clone()}, nil
}

// Options returns a copy of the bound configuration.
func (l *MultiScaleSSIMLoss) Options() metric.Options {
	return l.opts.Clone()
}

// Forward returns 1 - MultiScaleSSIM(pred, target) element-wise. For complex
// inputs 1 is subtracted from both components.
func (l *MultiScaleSSIMLoss) Forward(pred, target *tensor.Tensor) (*metric.Result, error) {
	score, err := metric.MultiScaleSSIM(pred, target, l.opts)
	if err != nil {
		return nil, err
	}
	return score.OneMinus(), nil
}

// SSIMLoss is 1 - SSIM with a configuration fixed at construction.
type SSIMLoss struct {
	opts metric.Options
}

// NewSSIMLoss validates opts and binds a copy of them.
func NewSSIMLoss(opts metric.Options) (*SSIMLoss, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &SSIMLoss{opts: opts.Clone()}, nil
}

// Options returns a copy of the bound configuration.
func (l *SSIMLoss) Options() metric.Options {
	return l.opts.Clone()
}

// Forward returns 1 - SSIM(pred, target) element-wise.
func (l *SSIMLoss) Forward(pred, target *tensor.Tensor) (*metric.Result, error) {
	score, err := metric.SSIM(pred, target, l.opts)
	if err != nil {
		return nil, err
	}
	return score.OneMinus(), nil
}

// MixedLoss blends 1 - MS-SSIM with a per-pixel loss, as proposed by Zhao
// et al., "Loss Functions for Image Restoration with Neural Networks":
//
//	alpha * (1 - MS-SSIM) + (1 - alpha) * pixel
//
// Both terms are computed per batch item on samples divided by the data
// range, then reduced with the configured reduction.
type MixedLoss struct {
	alpha float64
	pixel Loss
	opts  metric.Options
}

// NewMixedLoss creates a MixedLoss. alpha must lie in [0, 1]; the Zhao et al.
// setting is 0.84 with L1Loss.
func NewMixedLoss(alpha float64, pixel Loss, opts metric.Options) (*MixedLoss, error) {
	if !(alpha >= 0 && alpha <= 1) {
		return nil, validate.Errorf("alpha must lie in [0, 1], got %v", alpha)
	}
	if pixel == nil {
		return nil, validate.Errorf("pixel loss must not be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &MixedLoss{alpha: alpha, pixel: pixel, opts: opts.Clone()}, nil
}

// Forward computes the blended loss for real inputs.
func (l *MixedLoss) Forward(pred, target *tensor.Tensor) (*metric.Result, error) {
	if pred == nil || target == nil {
		return nil, validate.Errorf("inputs must not be nil")
	}
	if pred.Rank() == 5 {
		return nil, validate.Errorf("mixed loss supports real inputs only, got shape %v", pred.Shape())
	}

	perItem := l.opts
	perItem.Reduction = metric.ReductionNone
	score, err := metric.MultiScaleSSIM(pred, target, perItem)
	if err != nil {
		return nil, err
	}

	cp, err := tensor.Canonical(pred)
	if err != nil {
		return nil, err
	}
	ct, err := tensor.Canonical(target)
	if err != nil {
		return nil, err
	}

	values := make([]float64, score.Len())
	for b := range values {
		p := cp.Item(b).Scale(1 / l.opts.DataRange)
		t := ct.Item(b).Scale(1 / l.opts.DataRange)
		values[b] = l.alpha*(1-score.Real[b]) + (1-l.alpha)*l.pixel.Forward(p.Data(), t.Data())
	}

	return l.opts.Reduction.Apply(values), nil
}
