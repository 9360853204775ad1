// Package kernel builds the Gaussian windows used for local image statistics.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// Gaussian returns a size x size Gaussian window with standard deviation
// sigma, normalized so its entries sum to 1.
func Gaussian(size int, sigma float64) (*mat.Dense, error) {
	if err := validate.KernelSize(size); err != nil {
		return nil, err
	}
	if err := validate.Sigma(sigma); err != nil {
		return nil, err
	}

	coords := make([]float64, size)
	center := float64(size-1) / 2
	for i := range coords {
		d := float64(i) - center
		coords[i] = d * d
	}

	data := make([]float64, size*size)
	denom := 2 * sigma * sigma
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			data[i*size+j] = math.Exp(-(coords[i] + coords[j]) / denom)
		}
	}
	floats.Scale(1/floats.Sum(data), data)

	return mat.NewDense(size, size, data), nil
}
