package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/dto"
	autherror "github.com/mohammad-ishtiaque/Agro-clima-api/internal/errors"
	"github.com/mohammad-ishtiaque/Agro-clima-api/pkg/constant"
)

// UserService drives the account lifecycle: signup, email verification via
// OTP, login, and password reset. All mutations are read-modify-write on a
// single account row; conflicting signups are resolved by the storage
// layer's unique email constraint.
type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	notifier     domain.OTPNotifier
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, notifier domain.OTPNotifier) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		notifier:     notifier,
	}
}

// Signup creates an unverified account with a pending verification OTP and
// dispatches the code by email. No session token is returned; the user must
// verify first.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*dto.MessageResponse, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	if input.Password != input.ConfirmPassword {
		return nil, autherror.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code, err := GenerateOTP()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.SetOTP(code, OTPExpiry(now))

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.dispatchOTP(ctx, user.Email, code, domain.OTPPurposeVerify)

	return &dto.MessageResponse{
		Message: "Account created! Please check your email for OTP verification.",
		Success: true,
	}, nil
}

// VerifyEmail consumes a pending verification OTP, marks the account
// verified and issues a session token (auto login after verification).
func (s *UserService) VerifyEmail(ctx context.Context, input dto.VerifyEmailInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	if user.IsVerified {
		return nil, autherror.ErrEmailAlreadyVerified
	}
	if user.OTPCode == nil || *user.OTPCode != input.OTPCode {
		return nil, autherror.ErrInvalidOTP
	}
	if !IsOTPValid(user.OTPExpiresAt, time.Now()) {
		return nil, autherror.ErrOTPExpired
	}

	user.IsVerified = true
	user.ClearOTP()
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.tokenResponse(user)
}

// ResendOTP replaces the pending verification code. The previous code is
// invalid the moment the new pair is written.
func (s *UserService) ResendOTP(ctx context.Context, input dto.ResendOTPInput) (*dto.MessageResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	if user.IsVerified {
		return nil, autherror.ErrEmailAlreadyVerified
	}

	if err := s.issueOTP(ctx, user, domain.OTPPurposeVerify); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{
		Message: "New OTP sent to your email!",
		Success: true,
	}, nil
}

// Login exchanges credentials for a session token. Unknown email and wrong
// password return the identical ErrInvalidCredentials so accounts cannot be
// enumerated. A correct password on an unverified account triggers a fresh
// verification OTP before failing: the client lands on the OTP screen with
// a usable code already in flight (auto-resend-on-login, kept intentionally).
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsVerified {
		if err := s.issueOTP(ctx, user, domain.OTPPurposeVerify); err != nil {
			return nil, err
		}
		return nil, autherror.ErrEmailNotVerified
	}

	return s.tokenResponse(user)
}

// ForgotPassword issues a reset OTP when the account exists. The
// acknowledgement is identical either way (enumeration resistance).
func (s *UserService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (*dto.MessageResponse, error) {
	ack := &dto.MessageResponse{
		Message: "If this email exists, you will receive an OTP shortly.",
		Success: true,
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return ack, nil
	}

	if err := s.issueOTP(ctx, user, domain.OTPPurposeReset); err != nil {
		return nil, err
	}

	return ack, nil
}

// ResetPassword consumes a reset OTP and replaces the password hash. No
// token is issued; the user logs in again with the new password.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) (*dto.MessageResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	if user.OTPCode == nil || *user.OTPCode != input.OTPCode {
		return nil, autherror.ErrInvalidOTP
	}
	if !IsOTPValid(user.OTPExpiresAt, time.Now()) {
		return nil, autherror.ErrOTPExpired
	}
	if input.NewPassword != input.ConfirmPassword {
		return nil, autherror.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.ClearOTP()
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{
		Message: "Password changed successfully! You can now login.",
		Success: true,
	}, nil
}

// Authenticate resolves a bearer token to the live account record. A valid
// token for an account that no longer exists fails the same way as a bad
// token.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokenService.Verify(tokenString)
	if err != nil {
		return nil, autherror.ErrUnauthenticated
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUnauthenticated
	}

	return user, nil
}

// issueOTP writes a new OTP pair onto the account and dispatches it.
func (s *UserService) issueOTP(ctx context.Context, user *domain.User, purpose domain.OTPPurpose) error {
	code, err := GenerateOTP()
	if err != nil {
		return err
	}

	now := time.Now()
	user.SetOTP(code, OTPExpiry(now))
	user.UpdatedAt = now

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.dispatchOTP(ctx, user.Email, code, purpose)

	return nil
}

// dispatchOTP hands the code to the notifier. Delivery failures are logged
// and swallowed: the account mutation has already been committed and must
// not be rolled back over a slow or broken mail path.
func (s *UserService) dispatchOTP(ctx context.Context, email, code string, purpose domain.OTPPurpose) {
	if err := s.notifier.SendOTP(ctx, email, code, purpose); err != nil {
		log.Warn().Err(err).Str("purpose", string(purpose)).Msg("failed to dispatch OTP email")
	}
}

func (s *UserService) tokenResponse(user *domain.User) (*dto.TokenResponse, error) {
	accessToken, err := s.tokenService.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constant.DefaultTokenType,
		User:        dto.NewUserOutput(user),
	}, nil
}
