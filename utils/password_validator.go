package utils

// MinPasswordLength is the minimum accepted length for a new admin password.
const MinPasswordLength = 4

// ValidatePasswordChange checks a password rotation request against the
// stored digest. All checks must pass before the digest may be replaced;
// on any failure the stored credential stays untouched.
func ValidatePasswordChange(storedHash, current, newPassword, confirm string) error {
	if HashPassword(current) != storedHash {
		return ErrWrongCurrentPassword
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
