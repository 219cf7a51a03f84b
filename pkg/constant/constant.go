package constant

import "time"

const (
	// DefaultTokenType is the scheme clients use in the Authorization header.
	DefaultTokenType = "bearer"

	// OTPLength is the number of digits in a one-time passcode.
	OTPLength = 6

	// OTPExpiry is how long a freshly issued OTP stays valid.
	OTPExpiry = 10 * time.Minute
)
