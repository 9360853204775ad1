package layer

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// DepthwiseConv2D applies one shared 2D filter to every plane independently,
// which is a grouped convolution with groups equal to the channel count.
// Like most deep learning frameworks it computes a cross-correlation.
type DepthwiseConv2D struct {
	kernelH int
	kernelW int
	stride  int
	padding int

	// Weights: [kernelH, kernelW], row-major
	weights []float64
}

// NewDepthwiseConv2D creates a depthwise convolution from a kernel matrix.
// stride: stride for convolution
// padding: zero padding size
func NewDepthwiseConv2D(kernel mat.Matrix, stride, padding int) *DepthwiseConv2D {
	kh, kw := kernel.Dims()
	weights := make([]float64, 0, kh*kw)
	for i := 0; i < kh; i++ {
		for j := 0; j < kw; j++ {
			weights = append(weights, kernel.At(i, j))
		}
	}
	return &DepthwiseConv2D{
		kernelH: kh,
		kernelW: kw,
		stride:  stride,
		padding: padding,
		weights: weights,
	}
}

// computeOutputSize calculates the output spatial dimensions
func (c *DepthwiseConv2D) computeOutputSize(inputHeight, inputWidth int) (int, int) {
	// Output size: (input + 2*padding - kernel) / stride + 1
	outH := (inputHeight+2*c.padding-c.kernelH)/c.stride + 1
	outW := (inputWidth+2*c.padding-c.kernelW)/c.stride + 1
	return outH, outW
}

// OutputSize returns the spatial dimensions Forward produces for the given input.
func (c *DepthwiseConv2D) OutputSize(height, width int) (int, int) {
	return c.computeOutputSize(height, width)
}

// Forward filters every plane of input.
// input: flattened [planes, height, width]
// Returns: flattened [planes, outH, outW] and the output dimensions.
// Planes are split across workers; each worker writes a disjoint range.
func (c *DepthwiseConv2D) Forward(input []float64, planes, height, width int) ([]float64, int, int) {
	if len(input) != planes*height*width {
		panic("DepthwiseConv2D: input length does not match planes*height*width")
	}
	outH, outW := c.computeOutputSize(height, width)
	if outH <= 0 || outW <= 0 {
		panic("DepthwiseConv2D: input smaller than the kernel")
	}
	output := make([]float64, planes*outH*outW)

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > planes {
		numWorkers = planes
	}
	if numWorkers <= 1 {
		c.forwardPlanes(input, output, 0, planes, height, width, outH, outW)
		return output, outH, outW
	}

	var wg sync.WaitGroup
	chunkSize := (planes + numWorkers - 1) / numWorkers
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, planes)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			c.forwardPlanes(input, output, start, end, height, width, outH, outW)
		}(start, end)
	}
	wg.Wait()

	return output, outH, outW
}

func (c *DepthwiseConv2D) forwardPlanes(input, output []float64, start, end, height, width, outH, outW int) {
	kh, kw := c.kernelH, c.kernelW
	stride, padding := c.stride, c.padding
	inSize := height * width
	outSize := outH * outW

	for p := start; p < end; p++ {
		in := input[p*inSize : (p+1)*inSize]
		out := output[p*outSize : (p+1)*outSize]
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				sum := 0.0
				for i := 0; i < kh; i++ {
					inH := oh*stride + i - padding
					if inH < 0 || inH >= height {
						continue
					}
					row := in[inH*width:]
					wrow := c.weights[i*kw : (i+1)*kw]
					for j := 0; j < kw; j++ {
						inW := ow*stride + j - padding
						if inW < 0 || inW >= width {
							continue
						}
						sum += wrow[j] * row[inW]
					}
				}
				out[oh*outW+ow] = sum
			}
		}
	}
}
