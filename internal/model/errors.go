package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an insert violates a uniqueness constraint.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmailTaken and ErrUsernameTaken narrow ErrAlreadyExists for users.
	ErrEmailTaken    = errors.New("email already taken")
	ErrUsernameTaken = errors.New("username already taken")
	// ErrReferenceMissing is returned when a referenced row vanished before the insert.
	ErrReferenceMissing = errors.New("referenced row does not exist")
)
