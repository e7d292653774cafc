package utils

import "errors"

var (
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrPasswordMismatch     = errors.New("new passwords do not match")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrEmptyEmail           = errors.New("email cannot be empty")
)
