package domain

import "errors"

var (
	// ErrInvalidArgument marks malformed construction input or a decay
	// query that has no defined answer for the isotope it was asked of.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange marks a transmutation or index lookup that resolves
	// outside the catalog (Z outside [0, MaxZ]).
	ErrOutOfRange = errors.New("out of range")
)

// MaxZ is the highest atomic number in the catalog.
const MaxZ = 118
