package domain

import "errors"

// ErrProgramNotFound is returned when a program name cannot be resolved by a loader.
var ErrProgramNotFound = errors.New("program not found")
