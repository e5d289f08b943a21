package config

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidPopulation = errors.New("population must be a positive integer")

// ParsePopulation reads the optional population argument. With no argument
// it returns fallback and a nil error. A malformed or non-positive argument
// returns fallback together with an ErrInvalidPopulation error so the caller
// can report it and carry on.
func ParsePopulation(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fallback, fmt.Errorf("%w: %q", ErrInvalidPopulation, args[0])
	}
	if n <= 0 {
		return fallback, fmt.Errorf("%w: %d", ErrInvalidPopulation, n)
	}
	return n, nil
}
