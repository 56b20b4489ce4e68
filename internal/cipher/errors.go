package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for every validation failure in this
// package. errors.Is(err, ErrInvalidInput) matches all of the sentinels
// below.
var ErrInvalidInput = errors.New("cipher: invalid input")

var (
	// ErrInvalidKey is returned by the constructors for an unusable key.
	ErrInvalidKey = fmt.Errorf("%w: invalid key", ErrInvalidInput)
	// ErrEmptyText is returned when no alphabet letters survive
	// normalization, or when cipher text is empty.
	ErrEmptyText = fmt.Errorf("%w: empty text", ErrInvalidInput)
	// ErrInvalidCipherText is returned by Decrypt when the input contains
	// anything but uppercase alphabet letters.
	ErrInvalidCipherText = fmt.Errorf("%w: invalid cipher text", ErrInvalidInput)
)
