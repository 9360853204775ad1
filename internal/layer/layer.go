package layer

// Layer is a stage that maps a stack of equally sized planes to another
// stack of equally sized planes.
type Layer interface {
	// Forward processes input, flattened as [planes, height, width], and
	// returns the flattened output with its spatial dimensions.
	Forward(input []float64, planes, height, width int) ([]float64, int, int)
}

// Sequential runs its layers in order, feeding each output to the next.
type Sequential struct {
	layers []Layer
}

// NewSequential creates a Sequential from layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Forward implements Layer.
func (s *Sequential) Forward(input []float64, planes, height, width int) ([]float64, int, int) {
	out, h, w := input, height, width
	for _, l := range s.layers {
		out, h, w = l.Forward(out, planes, h, w)
	}
	return out, h, w
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}
