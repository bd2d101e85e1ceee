package lab

import "errors"

// Errors returned at the input boundary (flags, yaml, stored runs).
var (
	// ErrUnknownHypothesis indicates a hypothesis value outside the closed set.
	ErrUnknownHypothesis = errors.New("lab: unknown hypothesis")

	// ErrUnknownAction indicates a scenario step with an unsupported action.
	ErrUnknownAction = errors.New("lab: unknown scenario action")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("lab: unknown preset")

	// ErrRunNotFinished indicates an attempt to save a run that has not completed.
	ErrRunNotFinished = errors.New("lab: experiment has not finished")

	// ErrInvalidRunID indicates a run id that is not a single notebook entry name.
	ErrInvalidRunID = errors.New("lab: invalid run id")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("lab: invalid configuration")
)
