package usecase

import "errors"

// ErrMovieNotFound is returned when a movie cannot be found by ID.
var ErrMovieNotFound = errors.New("movie not found")
