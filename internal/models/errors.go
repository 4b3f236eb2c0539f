package models

import "errors"

// Input validation errors shared by the calculators.
var (
	ErrInvalidAmount   = errors.New("amount must be a positive, finite number")
	ErrInvalidDuration = errors.New("duration must be a positive number of days")
)
