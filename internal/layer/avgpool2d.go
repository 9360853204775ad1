// Package layer provides the image filtering stages used by the metrics.
package layer

// AvgPool2D averages non-overlapping or strided square windows without
// padding. Trailing rows and columns that do not fill a window are dropped;
// callers that need edge handling pad first, for example with
// ReplicationPad2D.
type AvgPool2D struct {
	kernelSize int
	stride     int
}

// NewAvgPool2D creates an average pooling stage with a square window of
// kernelSize and the given stride.
func NewAvgPool2D(kernelSize, stride int) *AvgPool2D {
	return &AvgPool2D{
		kernelSize: kernelSize,
		stride:     stride,
	}
}

// OutputSize returns the spatial dimensions Forward produces for the given input.
func (a *AvgPool2D) OutputSize(height, width int) (int, int) {
	if height < a.kernelSize || width < a.kernelSize {
		return 0, 0
	}
	return (height-a.kernelSize)/a.stride + 1, (width-a.kernelSize)/a.stride + 1
}

// Forward pools every plane of input.
// input: flattened [planes, height, width]
// Returns: flattened [planes, outH, outW] and the output dimensions.
func (a *AvgPool2D) Forward(input []float64, planes, height, width int) ([]float64, int, int) {
	if len(input) != planes*height*width {
		panic("AvgPool2D: input length does not match planes*height*width")
	}

	outH, outW := a.OutputSize(height, width)
	if outH <= 0 || outW <= 0 {
		panic("AvgPool2D: input smaller than the pooling window")
	}

	k := a.kernelSize
	inv := 1.0 / float64(k*k)
	output := make([]float64, planes*outH*outW)

	for p := 0; p < planes; p++ {
		src := input[p*height*width : (p+1)*height*width]
		dst := output[p*outH*outW : (p+1)*outH*outW]
		for oh := 0; oh < outH; oh++ {
			top := oh * a.stride
			for ow := 0; ow < outW; ow++ {
				left := ow * a.stride
				sum := 0.0
				for kh := 0; kh < k; kh++ {
					row := src[(top+kh)*width+left : (top+kh)*width+left+k]
					for _, v := range row {
						sum += v
					}
				}
				dst[oh*outW+ow] = sum * inv
			}
		}
	}

	return output, outH, outW
}
