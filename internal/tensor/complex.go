package tensor

import "github.com/FlavioCFOliveira/GoSSIM/internal/validate"

// Canonical reshapes a validated tensor to its canonical form:
// [H, W] -> [1, 1, H, W] and [C, H, W] -> [1, C, H, W].
// Rank 4 and rank 5 tensors are returned unchanged.
func Canonical(t *Tensor) (*Tensor, error) {
	switch t.Rank() {
	case 2:
		return t.Reshape(1, 1, t.shape[0], t.shape[1])
	case 3:
		return t.Reshape(1, t.shape[0], t.shape[1], t.shape[2])
	case 4, 5:
		return t, nil
	default:
		return nil, validate.Errorf("input rank must be between 2 and 5, got %d", t.Rank())
	}
}

// NewComplex interleaves real and imaginary parts of the same shape into a
// [batch, channel, height, width, 2] tensor. Parts of rank 2 or 3 are
// canonicalised first; any other rank than 2 to 4 is rejected.
func NewComplex(re, im *Tensor) (*Tensor, error) {
	if re == nil || im == nil {
		return nil, validate.Errorf("complex parts must not be nil")
	}
	if err := validate.Shapes(re.shape, im.shape); err != nil {
		return nil, err
	}
	if r := re.Rank(); r < 2 || r > 4 {
		return nil, validate.Errorf("complex parts must have rank 2 to 4, got shape %v", re.shape)
	}
	re, _ = Canonical(re)
	im, _ = Canonical(im)
	data := make([]float64, 2*len(re.data))
	for i := range re.data {
		data[2*i] = re.data[i]
		data[2*i+1] = im.data[i]
	}
	shape := append(re.Shape(), 2)
	return &Tensor{shape: shape, data: data}, nil
}

// Split separates a tensor with a trailing (real, imaginary) axis into two
// tensors without that axis.
func Split(t *Tensor) (re, im *Tensor, err error) {
	r := len(t.shape)
	if r < 2 || t.shape[r-1] != 2 {
		return nil, nil, validate.Errorf("tensor %v has no trailing (real, imaginary) axis", t.shape)
	}
	shape := t.Shape()[:r-1]
	n := len(t.data) / 2
	reData := make([]float64, n)
	imData := make([]float64, n)
	for i := 0; i < n; i++ {
		reData[i] = t.data[2*i]
		imData[i] = t.data[2*i+1]
	}
	return &Tensor{shape: shape, data: reData}, &Tensor{shape: append([]int(nil), shape...), data: imData}, nil
}

// Concat stacks same-shaped canonical tensors along the batch axis.
func Concat(ts ...*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, validate.Errorf("nothing to concatenate")
	}
	first := ts[0]
	var data []float64
	for i, t := range ts {
		if t.Rank() != first.Rank() {
			return nil, validate.Errorf("tensor %d has rank %d, want %d", i, t.Rank(), first.Rank())
		}
		for j := 1; j < t.Rank(); j++ {
			if t.shape[j] != first.shape[j] {
				return nil, validate.Errorf("tensor %d has shape %v, want %v on non-batch axes", i, t.shape, first.shape)
			}
		}
		data = append(data, t.data...)
	}
	shape := first.Shape()
	shape[0] = 0
	for _, t := range ts {
		shape[0] += t.shape[0]
	}
	return &Tensor{shape: shape, data: data}, nil
}
