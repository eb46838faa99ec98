// Package imaging converts an uploaded photo into the flat float32 tensor
// the classification model expects.
package imaging

import (
	"fmt"
	"image"
	"io"

	// register decoders for the formats browsers commonly upload
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// Channels is the number of color channels the model input expects.
// Decoding always forces three channels regardless of the source format.
const Channels = 3

// PrepareTensor decodes the image read from r, resizes it (not crops) to
// width×height, and returns a batch-of-one NHWC tensor of h*w*3 float32
// values scaled from [0,255] to [0.0,1.0].
//
// Any file that does not decode as an image fails here with
// [ErrNotAnImage]; no earlier validation of uploads is performed, matching
// the reference behavior.
func PrepareTensor(r io.Reader, height, width int) ([]float32, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGeometry, height, width)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnImage, err)
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Bilinear)

	tensor := make([]float32, 0, height*width*Channels)
	bounds := scaled.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// RGBA returns 16-bit values; shift down to [0,255] and
			// drop alpha to force a 3-channel color read.
			r16, g16, b16, _ := scaled.At(x, y).RGBA()
			tensor = append(tensor,
				float32(r16>>8)/255.0,
				float32(g16>>8)/255.0,
				float32(b16>>8)/255.0,
			)
		}
	}

	return tensor, nil
}
