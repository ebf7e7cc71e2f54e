package services

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrMissingFields = errors.New("missing required fields")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrNoTarget         = errors.New("favorite has no target")
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
