package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/dto"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/handler"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/service"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/mocks"
)

type handlerMocks struct {
	repo     *mocks.MockUserRepository
	tokens   *mocks.MockTokenGenerator
	notifier *mocks.MockOTPNotifier
}

func newHandler(t *testing.T) (*handler.AuthHandler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := handlerMocks{
		repo:     mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
		notifier: mocks.NewMockOTPNotifier(ctrl),
	}

	userService := service.NewUserService(m.repo, m.tokens, m.notifier)
	return handler.NewAuthHandler(userService), m
}

func TestSignup(t *testing.T) {
	authHandler, m := newHandler(t)

	app := fiber.New()
	app.Post("/signup", authHandler.Signup)

	t.Run("success", func(t *testing.T) {
		input := dto.SignupInput{
			FullName:        "Test User",
			Email:           "test@example.com",
			Password:        "password123",
			ConfirmPassword: "password123",
		}

		m.repo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().SendOTP(gomock.Any(), input.Email, gomock.Any(), domain.OTPPurposeVerify).Return(nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out dto.MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.True(t, out.Success)
		assert.Contains(t, out.Message, "OTP verification")
	})

	t.Run("bad request on malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/signup", bytes.NewReader([]byte("not-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		input := dto.SignupInput{
			Email:           "taken@example.com",
			Password:        "password123",
			ConfirmPassword: "password123",
		}

		m.repo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(&domain.User{ID: "existing"}, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	authHandler, m := newHandler(t)

	app := fiber.New()
	app.Post("/login", authHandler.Login)

	t.Run("unauthorized on unknown email", func(t *testing.T) {
		input := dto.LoginInput{Email: "missing@example.com", Password: "password123"}

		m.repo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("forbidden on unverified account", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		require.NoError(t, err)
		user := &domain.User{
			ID:           "user-123",
			Email:        "test@example.com",
			PasswordHash: string(hash),
		}

		m.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().SendOTP(gomock.Any(), user.Email, gomock.Any(), domain.OTPPurposeVerify).Return(nil)

		body, _ := json.Marshal(dto.LoginInput{Email: user.Email, Password: "password123"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestVerifyEmailHandler(t *testing.T) {
	authHandler, m := newHandler(t)

	app := fiber.New()
	app.Post("/verify-email", authHandler.VerifyEmail)

	t.Run("success returns token", func(t *testing.T) {
		code := "123456"
		expiry := time.Now().Add(5 * time.Minute)
		user := &domain.User{
			ID:           "user-123",
			Email:        "test@example.com",
			OTPCode:      &code,
			OTPExpiresAt: &expiry,
		}

		m.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.tokens.EXPECT().Generate(user.ID).Return("signed-token", nil)

		body, _ := json.Marshal(dto.VerifyEmailInput{Email: user.Email, OTPCode: code})
		req := httptest.NewRequest("POST", "/verify-email", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "signed-token", out.AccessToken)
		assert.Equal(t, "bearer", out.TokenType)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		m.repo.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, nil)

		body, _ := json.Marshal(dto.VerifyEmailInput{Email: "missing@example.com", OTPCode: "123456"})
		req := httptest.NewRequest("POST", "/verify-email", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestForgotPasswordHandler(t *testing.T) {
	authHandler, m := newHandler(t)

	app := fiber.New()
	app.Post("/forgot-password", authHandler.ForgotPassword)

	t.Run("unknown email still returns 200", func(t *testing.T) {
		m.repo.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, nil)

		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: "missing@example.com"})
		req := httptest.NewRequest("POST", "/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestMe(t *testing.T) {
	authHandler, m := newHandler(t)

	app := fiber.New()
	app.Get("/me", authHandler.RequireAuth, authHandler.Me)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		user := &domain.User{ID: "user-123", Email: "test@example.com", IsVerified: true}

		m.tokens.EXPECT().Verify("good-token").
			Return(&service.JWTCustomClaims{UserID: user.ID}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.UserOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, user.ID, out.ID)
		assert.Equal(t, user.Email, out.Email)
	})
}
