package ssim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoSSIM/internal/layer"
	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// PerChannelComplex is PerChannel for complex images given as separate real
// and imaginary canonical tensors. Products are plain complex products
// (no conjugation) and the stabilising constants are added to the real part
// only, so zero imaginary inputs reproduce PerChannel exactly.
func PerChannelComplex(xRe, xIm, yRe, yIm *tensor.Tensor, k *mat.Dense, k1, k2 float64) (ssimVal, cs []complex128, err error) {
	if err := checkPlanes(xRe, yRe, k); err != nil {
		return nil, nil, err
	}
	if err := validate.Shapes(xRe.Shape(), xIm.Shape()); err != nil {
		return nil, nil, err
	}
	if err := validate.Shapes(yRe.Shape(), yIm.Shape()); err != nil {
		return nil, nil, err
	}
	c1 := complex(k1*k1, 0)
	c2 := complex(k2*k2, 0)

	planes, h, w := xRe.Planes()
	xr, xi := xRe.Data(), xIm.Data()
	yr, yi := yRe.Data(), yIm.Data()

	xSq := make([]float64, len(xr))
	ySq := make([]float64, len(xr))
	xyRe := make([]float64, len(xr))
	xyIm := make([]float64, len(xr))
	for i := range xr {
		xSq[i] = xr[i]*xr[i] + xi[i]*xi[i]
		ySq[i] = yr[i]*yr[i] + yi[i]*yi[i]
		xyRe[i] = xr[i]*yr[i] - xi[i]*yi[i]
		xyIm[i] = xr[i]*yi[i] + xi[i]*yr[i]
	}

	conv := layer.NewDepthwiseConv2D(k, 1, 0)
	mu1Re, outH, outW := conv.Forward(xr, planes, h, w)
	mu1Im, _, _ := conv.Forward(xi, planes, h, w)
	mu2Re, _, _ := conv.Forward(yr, planes, h, w)
	mu2Im, _, _ := conv.Forward(yi, planes, h, w)
	eXSq, _, _ := conv.Forward(xSq, planes, h, w)
	eYSq, _, _ := conv.Forward(ySq, planes, h, w)
	eXYRe, _, _ := conv.Forward(xyRe, planes, h, w)
	eXYIm, _, _ := conv.Forward(xyIm, planes, h, w)

	size := outH * outW
	ssimVal = make([]complex128, planes)
	cs = make([]complex128, planes)

	for p := 0; p < planes; p++ {
		off := p * size
		var ssimSum, csSum complex128
		for i := 0; i < size; i++ {
			mu1 := complex(mu1Re[off+i], mu1Im[off+i])
			mu2 := complex(mu2Re[off+i], mu2Im[off+i])
			mu1Sq := real(mu1)*real(mu1) + imag(mu1)*imag(mu1)
			mu2Sq := real(mu2)*real(mu2) + imag(mu2)*imag(mu2)
			mu1mu2 := mu1 * mu2

			sigma1Sq := eXSq[off+i] - mu1Sq
			sigma2Sq := eYSq[off+i] - mu2Sq
			sigma12 := complex(eXYRe[off+i], eXYIm[off+i]) - mu1mu2

			csMap := (2*sigma12 + c2) / complex(sigma1Sq+sigma2Sq+real(c2), 0)
			lMap := (2*mu1mu2 + c1) / complex(mu1Sq+mu2Sq+real(c1), 0)
			ssimSum += lMap * csMap
			csSum += csMap
		}
		n := complex(float64(size), 0)
		ssimVal[p] = ssimSum / n
		cs[p] = csSum / n
	}
	return ssimVal, cs, nil
}
