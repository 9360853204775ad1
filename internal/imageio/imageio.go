// Package imageio loads images from disk and converts them into tensors
// the metrics accept.
package imageio

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	// Decoders beyond the PNG, JPEG and GIF ones registered by imgio.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/FlavioCFOliveira/GoSSIM/internal/tensor"
	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

// DataRange is the sample range of tensors produced by ToTensor.
const DataRange = 255.0

// ColorMode selects the channels ToTensor extracts.
type ColorMode int

const (
	// ColorRGB yields three channels, alpha is dropped.
	ColorRGB ColorMode = iota
	// ColorGray yields a single luminance channel.
	ColorGray
)

func (m ColorMode) String() string {
	if m == ColorGray {
		return "gray"
	}
	return "rgb"
}

// Channels returns the channel count of the mode.
func (m ColorMode) Channels() int {
	if m == ColorGray {
		return 1
	}
	return 3
}

// Load decodes the image stored at path.
func Load(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to width x height with bilinear filtering.
func Resize(img image.Image, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, validate.Errorf("resize target must be positive, got %dx%d", width, height)
	}
	return transform.Resize(img, width, height, transform.Linear), nil
}

// ToTensor converts img into a [1, C, H, W] tensor with samples in
// [0, DataRange].
func ToTensor(img image.Image, mode ColorMode) (*tensor.Tensor, error) {
	if img == nil {
		return nil, validate.Errorf("image must not be nil")
	}
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	if h <= 0 || w <= 0 {
		return nil, validate.Errorf("image is empty: %v", b)
	}

	var src image.Image = img
	if mode == ColorGray {
		src = effect.Grayscale(img)
	}
	rgba := clone.AsRGBA(src)

	channels := mode.Channels()
	plane := h * w
	data := make([]float64, channels*plane)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*w]
		for x := 0; x < w; x++ {
			px := row[4*x : 4*x+4]
			for c := 0; c < channels; c++ {
				data[c*plane+y*w+x] = float64(px[c])
			}
		}
	}

	return tensor.New(data, 1, channels, h, w)
}

// LoadTensor loads path and converts it with ToTensor. A positive width and
// height resize the image first.
func LoadTensor(path string, mode ColorMode, width, height int) (*tensor.Tensor, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	if width > 0 && height > 0 {
		if img, err = Resize(img, width, height); err != nil {
			return nil, err
		}
	}
	return ToTensor(img, mode)
}

// Batch stacks single-image tensors along the batch axis.
func Batch(ts ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Concat(ts...)
}
