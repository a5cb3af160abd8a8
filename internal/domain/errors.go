package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrInvalidInput    = errors.New("invalid input")
)
