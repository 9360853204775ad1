// Package ssim computes per-channel structural similarity from local
// Gaussian-weighted statistics.
package ssim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/layer"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// PerChannel computes the SSIM value and the contrast-structure term of
// every (batch, channel) plane of two canonical real tensors whose samples
// are already scaled to [0, 1].
//
// Both results are laid out as b*channels + c.
func PerChannel(x, y *tensor.Tensor, k *mat.Dense, k1, k2 float64) (ssimVal, cs []float64, err error) {
	if err := checkPlanes(x, y, k); err != nil {
		return nil, nil, err
	}
	c1 := k1 * k1
	c2 := k2 * k2

	planes, h, w := x.Planes()
	xd, yd := x.Data(), y.Data()
	xx := make([]float64, len(xd))
	yy := make([]float64, len(xd))
	xy := make([]float64, len(xd))
	for i := range xd {
		xx[i] = xd[i] * xd[i]
		yy[i] = yd[i] * yd[i]
		xy[i] = xd[i] * yd[i]
	}

	conv := layer.NewDepthwiseConv2D(k, 1, 0)
	muX, outH, outW := conv.Forward(xd, planes, h, w)
	muY, _, _ := conv.Forward(yd, planes, h, w)
	eXX, _, _ := conv.Forward(xx, planes, h, w)
	eYY, _, _ := conv.Forward(yy, planes, h, w)
	eXY, _, _ := conv.Forward(xy, planes, h, w)

	size := outH * outW
	csMap := make([]float64, size)
	ssimMap := make([]float64, size)
	ssimVal = make([]float64, planes)
	cs = make([]float64, planes)

	for p := 0; p < planes; p++ {
		off := p * size
		for i := 0; i < size; i++ {
			mx, my := muX[off+i], muY[off+i]
			muXX, muYY, muXY := mx*mx, my*my, mx*my
			sigmaXX := eXX[off+i] - muXX
			sigmaYY := eYY[off+i] - muYY
			sigmaXY := eXY[off+i] - muXY

			csMap[i] = (2*sigmaXY + c2) / (sigmaXX + sigmaYY + c2)
			ssimMap[i] = (2*muXY + c1) / (muXX + muYY + c1) * csMap[i]
		}
		ssimVal[p] = floats.Sum(ssimMap) / float64(size)
		cs[p] = floats.Sum(csMap) / float64(size)
	}
	return ssimVal, cs, nil
}

func checkPlanes(x, y *tensor.Tensor, k *mat.Dense) error {
	if err := validate.Shapes(x.Shape(), y.Shape()); err != nil {
		return err
	}
	if x.Rank() != 4 {
		return validate.Errorf("expected a [batch, channel, height, width] tensor, got %v", x.Shape())
	}
	kh, kw := k.Dims()
	if h, w := x.Dim(2), x.Dim(3); h < kh || w < kw {
		return validate.Errorf("image of size %dx%d is smaller than the %dx%d kernel", h, w, kh, kw)
	}
	return nil
}
