package database

import "errors"

// ErrSuggestionNotFound is returned when a suggestion is not found.
var ErrSuggestionNotFound = errors.New("suggestion not found")

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")
