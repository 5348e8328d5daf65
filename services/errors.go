package services

import "errors"

// Shared errors used across services and the HTTP mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed         = errors.New("validation failed")
	ErrGameNameRequired         = errors.New("game name is required")
	ErrGamePointsNegative       = errors.New("game point values must not be negative")
	ErrPlayerNameRequired       = errors.New("player name is required")
	ErrPlayerNumberRequired     = errors.New("player number is required")
	ErrPlayerNumberNotNumeric   = errors.New("player number must contain digits only")
	ErrInvalidPointType         = errors.New("point type must be win or participation")
	ErrScoreSelectionIncomplete = errors.New("a game and a player must be selected")

	// Conflicts
	ErrGameNameConflict     = errors.New("game name already exists")
	ErrPlayerNumberConflict = errors.New("player number is already registered")

	// Authentication and authorization
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	// Entity-specific not-found variants
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
)
