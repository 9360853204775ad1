// Package loss provides image similarity losses and the per-pixel losses
// they can be blended with.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Loss is a per-pixel loss over two equally long sample slices, averaged
// over the samples. MixedLoss feeds it one batch item at a time with
// samples scaled to [0, 1].
type Loss interface {
	Forward(pred, target []float64) float64
}

// MSE is the mean squared error.
type MSE struct{}

// Forward returns (1/n) * sum((pred - target)^2).
func (MSE) Forward(pred, target []float64) float64 {
	checkLengths("MSE", pred, target)
	d := floats.Distance(pred, target, 2)
	return d * d / float64(len(pred))
}

// L1Loss is the mean absolute error.
type L1Loss struct{}

// Forward returns (1/n) * sum(|pred - target|).
func (L1Loss) Forward(pred, target []float64) float64 {
	checkLengths("L1Loss", pred, target)
	return floats.Distance(pred, target, 1) / float64(len(pred))
}

// Huber is quadratic for differences up to Delta and linear beyond.
type Huber struct {
	Delta float64
}

// NewHuber creates a Huber loss with the given delta.
func NewHuber(delta float64) *Huber {
	return &Huber{Delta: delta}
}

// Forward returns the mean Huber loss.
func (h Huber) Forward(pred, target []float64) float64 {
	checkLengths("Huber", pred, target)
	var sum float64
	for i, p := range pred {
		d := math.Abs(p - target[i])
		if d <= h.Delta {
			sum += 0.5 * d * d
		} else {
			sum += h.Delta * (d - 0.5*h.Delta)
		}
	}
	return sum / float64(len(pred))
}

func checkLengths(name string, pred, target []float64) {
	if len(pred) != len(target) || len(pred) == 0 {
		panic(name + ": prediction and target must be non-empty and of equal length")
	}
}
