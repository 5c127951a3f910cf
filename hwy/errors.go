package hwy

import "errors"

var (
	// ErrUnknownLevel is returned by ParseLevel for an unrecognized level name.
	ErrUnknownLevel = errors.New("hwy: unknown dispatch level")

	// ErrLevelUnavailable indicates a level the CPU does not support.
	ErrLevelUnavailable = errors.New("hwy: dispatch level not supported by this CPU")
)
