package metric

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// Reduction selects how per-item scores are combined over the batch axis.
type Reduction int

const (
	// ReductionNone keeps one score per batch item.
	ReductionNone Reduction = iota
	// ReductionMean averages the scores.
	ReductionMean
	// ReductionSum adds the scores.
	ReductionSum
)

// ParseReduction maps "none", "mean" and "sum" to a Reduction.
func ParseReduction(s string) (Reduction, error) {
	switch s {
	case "none":
		return ReductionNone, nil
	case "mean":
		return ReductionMean, nil
	case "sum":
		return ReductionSum, nil
	}
	return 0, validate.Errorf("unknown reduction %q, expected none, mean or sum", s)
}

func (r Reduction) String() string {
	switch r {
	case ReductionNone:
		return "none"
	case ReductionMean:
		return "mean"
	case ReductionSum:
		return "sum"
	}
	return "Reduction(?)"
}

func (r Reduction) validate() error {
	switch r {
	case ReductionNone, ReductionMean, ReductionSum:
		return nil
	}
	return validate.Errorf("unknown reduction %d", int(r))
}

func (r Reduction) reduceReal(v []float64) []float64 {
	switch r {
	case ReductionMean:
		return []float64{stat.Mean(v, nil)}
	case ReductionSum:
		return []float64{floats.Sum(v)}
	}
	return v
}

func (r Reduction) reduceComplex(v []complex128) []complex128 {
	if r == ReductionNone {
		return v
	}
	re := make([]float64, len(v))
	im := make([]float64, len(v))
	for i, z := range v {
		re[i], im[i] = real(z), imag(z)
	}
	out := r.reduceReal(re)[0]
	outIm := r.reduceReal(im)[0]
	return []complex128{complex(out, outIm)}
}

// Apply reduces per-item real values into a Result.
func (r Reduction) Apply(v []float64) *Result {
	return &Result{Kind: Real, Real: r.reduceReal(v)}
}
