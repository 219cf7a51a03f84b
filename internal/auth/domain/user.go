package domain

import "time"

// User is an account record. OTPCode and OTPExpiresAt are always set and
// cleared together: a non-nil pair means a pending OTP challenge exists.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsVerified   bool
	OTPCode      *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetOTP replaces any pending challenge with a new code/expiry pair.
func (u *User) SetOTP(code string, expiresAt time.Time) {
	u.OTPCode = &code
	u.OTPExpiresAt = &expiresAt
}

// ClearOTP consumes the pending challenge.
func (u *User) ClearOTP() {
	u.OTPCode = nil
	u.OTPExpiresAt = nil
}

func (u *User) HasPendingOTP() bool {
	return u.OTPCode != nil && u.OTPExpiresAt != nil
}
