package domain

import "errors"

var (
	// ErrMissingCostings is returned when a GP run is attempted without a cost catalog
	ErrMissingCostings = errors.New("no cost catalog supplied")

	// ErrMissingRecipes is returned when a GP run is attempted without recipes
	ErrMissingRecipes = errors.New("no recipes supplied")

	// ErrInvalidRecipe is returned for structurally invalid recipe rows (e.g. no menu item)
	ErrInvalidRecipe = errors.New("invalid recipe row")

	// ErrNoResults is returned when results are requested before any computation ran
	ErrNoResults = errors.New("no results computed yet")

	// ErrSessionNotFound is returned when a session id has no stored state
	ErrSessionNotFound = errors.New("session not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
