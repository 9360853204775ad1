package imageio

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/FlavioCFOliveira/GoSSIM/internal/validate"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(10 * x), G: uint8(20 * y), B: 200, A: 255})
		}
	}
	return img
}

func TestToTensorRGB(t *testing.T) {
	img := testImage(4, 3)
	ts, err := ToTensor(img, ColorRGB)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{1, 3, 3, 4}
	for i, d := range ts.Shape() {
		if d != want[i] {
			t.Fatalf("shape = %v, want %v", ts.Shape(), want)
		}
	}

	data := ts.Data()
	plane := 12
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			i := y*4 + x
			if data[i] != float64(10*x) {
				t.Errorf("R(%d,%d) = %v, want %v", x, y, data[i], 10*x)
			}
			if data[plane+i] != float64(20*y) {
				t.Errorf("G(%d,%d) = %v, want %v", x, y, data[plane+i], 20*y)
			}
			if data[2*plane+i] != 200 {
				t.Errorf("B(%d,%d) = %v, want 200", x, y, data[2*plane+i])
			}
		}
	}
}

func TestToTensorGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 255, 255, 255})
	img.Set(0, 1, color.RGBA{100, 100, 100, 255})
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})

	ts, err := ToTensor(img, ColorGray)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Dim(1) != 1 {
		t.Fatalf("channels = %d, want 1", ts.Dim(1))
	}

	data := ts.Data()
	for i, want := range []float64{0, 255, 100} {
		if math.Abs(data[i]-want) > 1 {
			t.Errorf("gray[%d] = %v, want %v", i, data[i], want)
		}
	}
	// Pure red is darker than white and brighter than black.
	if data[3] <= 0 || data[3] >= 255 {
		t.Errorf("gray(red) = %v, want strictly between 0 and 255", data[3])
	}
}

func TestToTensorOffsetBounds(t *testing.T) {
	img := testImage(6, 6).SubImage(image.Rect(2, 1, 5, 4))
	ts, err := ToTensor(img, ColorRGB)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Dim(2) != 3 || ts.Dim(3) != 3 {
		t.Fatalf("shape = %v, want 3x3 planes", ts.Shape())
	}
	if got := ts.Data()[0]; got != 20 {
		t.Errorf("R at sub-image origin = %v, want 20", got)
	}
}

func TestToTensorInvalid(t *testing.T) {
	if _, err := ToTensor(nil, ColorRGB); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("nil image: error = %v, want ErrInvalidInput", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := ToTensor(empty, ColorRGB); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("empty image: error = %v, want ErrInvalidInput", err)
	}
}

func TestResize(t *testing.T) {
	out, err := Resize(testImage(8, 6), 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b := out.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	if _, err := Resize(testImage(8, 6), 0, 3); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("zero width: error = %v, want ErrInvalidInput", err)
	}
}

func TestLoadTensor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage(5, 4)); err != nil {
		f.Close()
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ts, err := LoadTensor(path, ColorRGB, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Dim(2) != 4 || ts.Dim(3) != 5 {
		t.Errorf("shape = %v, want [1 3 4 5]", ts.Shape())
	}
	if got := ts.Data()[4]; got != 40 {
		t.Errorf("R(4,0) = %v, want 40", got)
	}

	resized, err := LoadTensor(path, ColorGray, 10, 8)
	if err != nil {
		t.Fatal(err)
	}
	if resized.Dim(1) != 1 || resized.Dim(2) != 8 || resized.Dim(3) != 10 {
		t.Errorf("shape = %v, want [1 1 8 10]", resized.Shape())
	}

	batch, err := Batch(ts, ts)
	if err != nil {
		t.Fatal(err)
	}
	if batch.Dim(0) != 2 {
		t.Errorf("batch size = %d, want 2", batch.Dim(0))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestColorMode(t *testing.T) {
	if ColorRGB.Channels() != 3 || ColorGray.Channels() != 1 {
		t.Error("unexpected channel counts")
	}
	if ColorGray.String() != "gray" || ColorRGB.String() != "rgb" {
		t.Error("unexpected names")
	}
}
