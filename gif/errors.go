package gif

import (
	"errors"
)

// One sentinel per failure class. Stages wrap these with positional
// context as the error travels up; callers match with errors.Is.
var (
	ErrMalformedHeader         = errors.New("gif: malformed header")
	ErrInvalidColorTableSize   = errors.New("gif: color table extends past end of data")
	ErrImageDescriptorNotFound = errors.New("gif: image descriptor not found")
	ErrTruncatedStream         = errors.New("gif: truncated image data stream")
	ErrCorruptCodeStream       = errors.New("gif: corrupt code stream")
	ErrDimensionMismatch       = errors.New("gif: pixel count does not fill declared width")
)
