package dto

type VerifyEmailInput struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

type ResendOTPInput struct {
	Email string `json:"email"`
}
