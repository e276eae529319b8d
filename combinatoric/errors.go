package combinatoric

import "errors"

// ErrInvalidK indicates a negative table size was requested.
var ErrInvalidK = errors.New("combinatoric: K must be >= 0")
