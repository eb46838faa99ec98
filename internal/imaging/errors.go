package imaging

import "errors"

var (
	// ErrNotAnImage is returned when the stored upload cannot be decoded
	// as an image. Uploads are not validated earlier, so this is the first
	// point a non-image file fails.
	ErrNotAnImage = errors.New("file is not a decodable image")

	// ErrBadGeometry is returned when the requested tensor geometry is not
	// positive in both dimensions.
	ErrBadGeometry = errors.New("invalid tensor geometry")
)
