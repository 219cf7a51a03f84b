package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/verify-email", h.VerifyEmail)
	auth.Post("/resend-otp", h.ResendOTP)
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)

	auth.Get("/me", h.RequireAuth, h.Me)
}
