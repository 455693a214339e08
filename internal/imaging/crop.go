// Package imaging turns user-supplied pictures into the circular goal
// thumbnails the backend stores, encoded as PNG data URIs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder

	xdraw "golang.org/x/image/draw"
)

// DefaultSize is the edge length of the cropped thumbnail in pixels.
const DefaultSize = 200

const dataURIPrefix = "data:image/png;base64,"

// ErrNotDataURI indicates a string that is not a PNG data URI.
var ErrNotDataURI = errors.New("imaging: not a png data uri")

// CropCircle scales src to cover a size×size square, centers it, and
// masks it to the inscribed circle. The result is deterministic for a
// given input, so re-cropping the same file yields identical bytes.
func CropCircle(src image.Image, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultSize
	}

	b := src.Bounds()
	aspect := float64(b.Dx()) / float64(b.Dy())

	drawW, drawH := size, size
	offsetX, offsetY := 0, 0
	if aspect > 1 {
		drawW = int(math.Round(float64(size) * aspect))
		offsetX = -(drawW - size) / 2
	} else {
		drawH = int(math.Round(float64(size) / aspect))
		offsetY = -(drawH - size) / 2
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, drawW, drawH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, xdraw.Over, nil)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	mask := &circleMask{c: image.Pt(size/2, size/2), r: size / 2, size: size}
	draw.DrawMask(dst, dst.Bounds(), scaled, image.Pt(-offsetX, -offsetY), mask, image.Point{}, draw.Over)
	return dst
}

// EncodeDataURI encodes img as a PNG data URI.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("imaging: encoding png: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURI decodes a PNG data URI produced by EncodeDataURI.
func DecodeDataURI(s string) (image.Image, error) {
	if !strings.HasPrefix(s, dataURIPrefix) {
		return nil, ErrNotDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, dataURIPrefix))
	if err != nil {
		return nil, fmt.Errorf("imaging: decoding data uri: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imaging: decoding png: %w", err)
	}
	return img, nil
}

// Process decodes any supported raster image from r, crops it to a
// circle of the given size, and returns the PNG data URI.
func Process(r io.Reader, size int) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("imaging: decoding image: %w", err)
	}
	return EncodeDataURI(CropCircle(src, size))
}

// ProcessFile runs Process on the file at path.
func ProcessFile(path string, size int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("imaging: opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Process(f, size)
}

// circleMask is an alpha mask that is opaque inside the inscribed
// circle and transparent outside it.
type circleMask struct {
	c    image.Point
	r    int
	size int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, m.size, m.size) }

func (m *circleMask) At(x, y int) color.Color {
	// Sample at the pixel center so the edge is symmetric.
	dx := float64(x-m.c.X) + 0.5
	dy := float64(y-m.c.Y) + 0.5
	if dx*dx+dy*dy <= float64(m.r)*float64(m.r) {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
