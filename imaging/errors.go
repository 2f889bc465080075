package imaging

import "fmt"

// DecodeError is returned when the uploaded bytes cannot be decoded as an image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidImageError is returned when a decoded image cannot produce a color
// feature vector (fewer than three channels or no pixels).
type InvalidImageError struct {
	Channels int
	Reason   string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image (%d channels): %s", e.Channels, e.Reason)
}
