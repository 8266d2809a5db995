package core

import (
	"errors"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidMass      = errors.New("mass must be positive")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrNilTarget        = errors.New("animation target is nil")
	ErrAlreadyOwned     = errors.New("object already has an owner")
	ErrOwnershipCycle   = errors.New("object cannot own itself or one of its ancestors")
	ErrEngineNotRunning = errors.New("engine is not initialized")
)
