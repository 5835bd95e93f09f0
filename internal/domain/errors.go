package domain

import "errors"

// ErrInvalidArgument marks caller misuse that is rejected before analysis runs.
var ErrInvalidArgument = errors.New("invalid argument")
