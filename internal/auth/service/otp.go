package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/mohammad-ishtiaque/Agro-clima-api/pkg/constant"
)

var otpMax = big.NewInt(1_000_000)

// GenerateOTP returns a uniformly random 6-digit code, leading zeros
// preserved ("000000" through "999999").
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%0*d", constant.OTPLength, n), nil
}

// OTPExpiry returns when a code issued at now stops being accepted.
func OTPExpiry(now time.Time) time.Time {
	return now.Add(constant.OTPExpiry).UTC()
}

// IsOTPValid reports whether a stored expiry is present and still in the
// future. Both sides are normalized to UTC so a timestamp scanned without
// zone information compares correctly.
func IsOTPValid(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return now.UTC().Before(expiresAt.UTC())
}
