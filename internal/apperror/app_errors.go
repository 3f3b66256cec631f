package apperror

import "errors"

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidWindowSize = errors.New("invalid window size")
	ErrInvalidFrameRate  = errors.New("invalid frame rate")
	ErrWindowInit        = errors.New("window initialization failed")
)
