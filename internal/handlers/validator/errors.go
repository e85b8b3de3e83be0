package validator

import (
	"errors"
)

type ErrInvalidMeasurements struct {
	error
}

func NewErrInvalidMeasurements(message string) *ErrInvalidMeasurements {
	return &ErrInvalidMeasurements{errors.New(message)}
}
