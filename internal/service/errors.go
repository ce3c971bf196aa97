package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrUserNotFound is returned when an identity (email) or a
	// caller-supplied user id maps to no stored user.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrTargetNotFound is returned by FavoriteService.Add when the catalog
	// item being favorited does not exist. The transport layer answers 401,
	// not 404, preserving the legacy conflation of missing target with
	// unauthorized.
	ErrTargetNotFound = errors.New("favorite target does not exist")

	// ErrAlreadyFavorite is returned when the user already has the target
	// marked as a favorite. Answered with 200 and a descriptive message.
	ErrAlreadyFavorite = errors.New("already a favorite")

	// ErrFavoriteNotFound is returned by RemoveByID when no favorite has the
	// given id at all.
	ErrFavoriteNotFound = errors.New("favorite does not exist")

	// ErrNothingToDelete is returned by the remove operations when the
	// composite key matches no favorite row, including the ownership miss of
	// RemoveByID. Deletes never surface as client errors.
	ErrNothingToDelete = errors.New("nothing to delete")

	ErrTokenCreationFailed     = errors.New("failed to create token")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
