package ga

import "errors"

var (
	ErrLengthMismatch  = errors.New("parents differ in length")
	ErrTooShort        = errors.New("individual too short for crossover")
	ErrInvalidPoint    = errors.New("invalid crossover point")
	ErrUnknownOperator = errors.New("unknown operator")
)
