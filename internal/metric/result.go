package metric

import "fmt"

// Kind tells which field of a Result holds the scores.
type Kind int

const (
	// Real scores come from rank 2-4 inputs.
	Real Kind = iota
	// Complex scores come from rank 5 inputs carrying (real, imaginary) pairs.
	Complex
)

func (k Kind) String() string {
	if k == Complex {
		return "complex"
	}
	return "real"
}

// Result holds metric scores, one per batch item or a single reduced value.
// Exactly one of Real and Complex is populated, as reported by Kind.
type Result struct {
	Kind    Kind
	Real    []float64
	Complex []complex128
}

// Len returns the number of scores.
func (r *Result) Len() int {
	if r.Kind == Complex {
		return len(r.Complex)
	}
	return len(r.Real)
}

// At returns score i as a complex number; real scores have a zero
// imaginary part.
func (r *Result) At(i int) complex128 {
	if r.Kind == Complex {
		return r.Complex[i]
	}
	return complex(r.Real[i], 0)
}

// Value returns the real part of the first score. It is the natural
// accessor for reduced real results.
func (r *Result) Value() float64 {
	return real(r.At(0))
}

// OneMinus returns a new Result holding 1 - score for every score.
// For complex scores 1 is subtracted from both components.
func (r *Result) OneMinus() *Result {
	switch r.Kind {
	case Complex:
		out := make([]complex128, len(r.Complex))
		for i, z := range r.Complex {
			out[i] = complex(1-real(z), 1-imag(z))
		}
		return &Result{Kind: Complex, Complex: out}
	default:
		out := make([]float64, len(r.Real))
		for i, v := range r.Real {
			out[i] = 1 - v
		}
		return &Result{Kind: Real, Real: out}
	}
}

// String implements fmt.Stringer.
func (r *Result) String() string {
	if r.Kind == Complex {
		return fmt.Sprintf("%v", r.Complex)
	}
	return fmt.Sprintf("%v", r.Real)
}
