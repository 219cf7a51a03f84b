package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain UserRepository,OTPNotifier

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

// OTPPurpose selects the email copy sent along with a code.
type OTPPurpose string

const (
	OTPPurposeVerify OTPPurpose = "verify"
	OTPPurposeReset  OTPPurpose = "reset"
)

// OTPNotifier delivers a one-time passcode to a user. Delivery is
// best-effort: callers must not treat a notifier failure as a reason to
// roll back an account mutation.
type OTPNotifier interface {
	SendOTP(ctx context.Context, email, code string, purpose OTPPurpose) error
}
