package layer

// ReplicationPad2D pads each plane by repeating its edge samples.
type ReplicationPad2D struct {
	top, bottom, left, right int
}

// NewReplicationPad2D creates a padding stage with per-side amounts.
func NewReplicationPad2D(top, bottom, left, right int) *ReplicationPad2D {
	return &ReplicationPad2D{top: top, bottom: bottom, left: left, right: right}
}

// Forward pads every plane of input.
// input: flattened [planes, height, width]
// Returns: flattened [planes, height+top+bottom, width+left+right] and the
// output dimensions.
func (r *ReplicationPad2D) Forward(input []float64, planes, height, width int) ([]float64, int, int) {
	if len(input) != planes*height*width {
		panic("ReplicationPad2D: input length does not match planes*height*width")
	}

	outH := height + r.top + r.bottom
	outW := width + r.left + r.right
	if r.top == 0 && r.bottom == 0 && r.left == 0 && r.right == 0 {
		output := make([]float64, len(input))
		copy(output, input)
		return output, outH, outW
	}

	output := make([]float64, planes*outH*outW)
	for p := 0; p < planes; p++ {
		in := input[p*height*width : (p+1)*height*width]
		out := output[p*outH*outW : (p+1)*outH*outW]
		for oh := 0; oh < outH; oh++ {
			ih := clamp(oh-r.top, height)
			row := in[ih*width : (ih+1)*width]
			for ow := 0; ow < outW; ow++ {
				out[oh*outW+ow] = row[clamp(ow-r.left, width)]
			}
		}
	}
	return output, outH, outW
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
