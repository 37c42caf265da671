package auth

import (
	"errors"
	"strings"

	"github.com/safeland/safetravel-api/internal/pkg/validator"
)

// ValidateSignup checks required fields and formats. Password length
// follows the provider minimum.
func ValidateSignup(req *SignupRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return errors.New("email, password and name are required")
	}

	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email format")
	}

	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	if req.Phone != "" && !validator.IsValidPhone(req.Phone) {
		return errors.New("invalid phone number")
	}

	if req.Birthdate != "" && !validator.IsValidDate(req.Birthdate) {
		return errors.New("birthdate must be in YYYY-MM-DD format")
	}

	return nil
}

func ValidateLogin(req *LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

func ValidateForgotPassword(req *ForgotPasswordRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return errors.New("email is required")
	}
	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email format")
	}
	return nil
}

func ValidateResetPassword(req *ResetPasswordRequest) error {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Code) == "" || req.NewPassword == "" {
		return errors.New("email, code and newPassword are required")
	}
	if len(req.NewPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
