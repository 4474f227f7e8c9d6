package forecast

import "errors"

// ErrInvalidInput indicates history that cannot be forecast from.
var ErrInvalidInput = errors.New("forecast: invalid input")
