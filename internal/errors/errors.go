package errors

import (
	"errors"
)

// Request-scoped auth failures. Handlers map these onto HTTP status codes;
// anything outside this list is treated as an internal fault and never
// surfaced verbatim to clients.
var (
	ErrEmailAlreadyInUse    = errors.New("email already registered")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyVerified = errors.New("email already verified")
	ErrInvalidOTP           = errors.New("invalid OTP code")
	ErrOTPExpired           = errors.New("OTP has expired, please request a new one")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailNotVerified     = errors.New("please verify your email first, a new OTP has been sent")
	ErrUnauthenticated      = errors.New("could not validate credentials")
	ErrForbidden            = errors.New("email verification required")

	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidAssessment  = errors.New("invalid assessment payload")
)
