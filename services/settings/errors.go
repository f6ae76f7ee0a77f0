package settings

import "errors"

var (
	// ErrSettingNotFound is returned when no setting exists for the key
	ErrSettingNotFound = errors.New("setting not found")

	// ErrForbidden is returned when the caller may not edit settings
	ErrForbidden = errors.New("operation not permitted")

	// ErrEmptyValue is returned when a setting is updated to an empty value
	ErrEmptyValue = errors.New("setting value must not be empty")

	// ErrInvalidRate is returned when cost_per_km is updated to something
	// that is not a positive number
	ErrInvalidRate = errors.New("cost per km must be a positive number")
)
