// Package texture implements the scene's texture registry: a bounded table
// of tag-addressed GPU textures whose slot index doubles as the texture unit.
package texture

import (
	"fmt"
	"image"
	"os"

	// Decoders registered for their side effects. The scene assets are JPEG,
	// but the registry accepts anything these can decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeFile decodes an image file into RGBA pixels with the row order
// flipped so the image origin is bottom-left, matching the texture sampling
// convention. It also reports the source image's channel count.
func DecodeFile(path string) (*image.RGBA, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	return flipVertical(toRGBA(img)), channels(img), nil
}

// channels reports the channel count of the decoded source image.
func channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	default:
		// RGBA, NRGBA, their 64-bit forms, paletted and CMYK images all
		// carry color plus alpha once converted.
		return 4
	}
}

// toRGBA converts any image.Image to *image.RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}

// flipVertical reverses the row order in place and returns img.
func flipVertical(img *image.RGBA) *image.RGBA {
	height := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
	return img
}
