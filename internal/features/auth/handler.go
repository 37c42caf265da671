package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safeland/safetravel-api/internal/identity"
	"github.com/safeland/safetravel-api/internal/pkg/mailer"
	"github.com/safeland/safetravel-api/internal/pkg/response"
)

const resetCodeTTL = 10 * time.Minute

// IdentityService is the slice of the identity provider this feature uses.
// *identity.Service satisfies it.
type IdentityService interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	AccountByEmail(ctx context.Context, email string) (*identity.Account, error)
	UpdatePassword(ctx context.Context, uid, newPassword string) error
	SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error)
}

// Store is the document-store surface this feature uses. *Repository
// satisfies it.
type Store interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	ProfileByUID(ctx context.Context, uid string) (*Profile, error)
	UpsertReset(ctx context.Context, reset *PasswordReset) error
	ResetByUID(ctx context.Context, uid string) (*PasswordReset, error)
	DeleteReset(ctx context.Context, uid string) error
}

type Handler struct {
	identity IdentityService
	store    Store
	sender   mailer.CodeSender
}

func NewHandler(identitySvc IdentityService, store Store, sender mailer.CodeSender) *Handler {
	return &Handler{
		identity: identitySvc,
		store:    store,
		sender:   sender,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account with the identity provider and store the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateSignup(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	displayName := req.Name
	if req.Surname != "" {
		displayName = req.Name + " " + req.Surname
	}

	uid, err := h.identity.CreateAccount(c.Request.Context(), req.Email, req.Password, displayName)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			response.Conflict(c, "Email already in use", "EMAIL_EXISTS")
			return
		}
		log.Printf("signup: create account for %s: %v", req.Email, err)
		response.InternalServerError(c, "Failed to create account", "PROVIDER_ERROR")
		return
	}

	profile := &Profile{
		UID:              uid,
		Email:            req.Email,
		Name:             req.Name,
		Surname:          req.Surname,
		Phone:            req.Phone,
		OriginCountry:    req.OriginCountry,
		ResidenceCountry: req.ResidenceCountry,
		Birthdate:        req.Birthdate,
	}

	if err := h.store.CreateProfile(c.Request.Context(), profile); err != nil {
		// The provider account exists at this point. The gap is tolerated:
		// GET /api/user answers 404 until the profile is written.
		log.Printf("signup: account %s created but profile write failed: %v", uid, err)
		response.InternalServerError(c, "Failed to save profile", "DATABASE_ERROR")
		return
	}

	token, err := h.identity.CustomToken(c.Request.Context(), uid)
	if err != nil {
		log.Printf("signup: mint custom token for %s: %v", uid, err)
		response.InternalServerError(c, "Failed to create session token", "PROVIDER_ERROR")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"uid":     uid,
		"token":   token,
	})
}

// Login godoc
// @Summary Login with email and password
// @Description Delegate credential verification to the identity provider
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	session, err := h.identity.SignInWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
			return
		}
		log.Printf("login: sign in for %s: %v", req.Email, err)
		response.InternalServerError(c, "Login failed", "PROVIDER_ERROR")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   session.IDToken,
		"uid":     session.UID,
		"email":   session.Email,
	})
}

// Me godoc
// @Summary Get current user profile
// @Description Return the profile document for the authenticated uid
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Profile
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /user [get]
func (h *Handler) Me(c *gin.Context) {
	uid := c.GetString("uid")

	profile, err := h.store.ProfileByUID(c.Request.Context(), uid)
	if err != nil {
		log.Printf("me: load profile for %s: %v", uid, err)
		response.InternalServerError(c, "Failed to load profile", "DATABASE_ERROR")
		return
	}
	if profile == nil {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Description Generate and store a 6-digit reset code for the account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateForgotPassword(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	account, err := h.identity.AccountByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			response.NotFound(c, "No account found for that email", "USER_NOT_FOUND")
			return
		}
		log.Printf("forgot-password: lookup %s: %v", req.Email, err)
		response.InternalServerError(c, "Failed to process request", "PROVIDER_ERROR")
		return
	}

	code, err := generateResetCode()
	if err != nil {
		log.Printf("forgot-password: generate code for %s: %v", account.UID, err)
		response.InternalServerError(c, "Failed to process request", "INTERNAL_ERROR")
		return
	}

	now := time.Now()
	reset := &PasswordReset{
		UID:       account.UID,
		Code:      code,
		Email:     account.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(resetCodeTTL),
	}

	if err := h.store.UpsertReset(c.Request.Context(), reset); err != nil {
		log.Printf("forgot-password: store reset for %s: %v", account.UID, err)
		response.InternalServerError(c, "Failed to process request", "DATABASE_ERROR")
		return
	}

	if err := h.sender.SendResetCode(c.Request.Context(), account.Email, code); err != nil {
		log.Printf("forgot-password: send code to %s: %v", account.Email, err)
		response.InternalServerError(c, "Failed to deliver reset code", "MAILER_ERROR")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent"})
}

// ResetPassword godoc
// @Summary Reset the password with a code
// @Description Verify the reset code and update the account password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateResetPassword(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	account, err := h.identity.AccountByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			response.NotFound(c, "No account found for that email", "USER_NOT_FOUND")
			return
		}
		log.Printf("reset-password: lookup %s: %v", req.Email, err)
		response.InternalServerError(c, "Failed to process request", "PROVIDER_ERROR")
		return
	}

	reset, err := h.store.ResetByUID(c.Request.Context(), account.UID)
	if err != nil {
		log.Printf("reset-password: load reset for %s: %v", account.UID, err)
		response.InternalServerError(c, "Failed to process request", "DATABASE_ERROR")
		return
	}
	if reset == nil {
		response.NotFound(c, "No pending reset request", "RESET_NOT_FOUND")
		return
	}

	if reset.Code != req.Code {
		response.BadRequest(c, "Invalid reset code", "INVALID_CODE")
		return
	}

	if time.Now().After(reset.ExpiresAt) {
		response.BadRequest(c, "Reset code expired", "CODE_EXPIRED")
		return
	}

	if err := h.identity.UpdatePassword(c.Request.Context(), account.UID, req.NewPassword); err != nil {
		log.Printf("reset-password: update password for %s: %v", account.UID, err)
		response.InternalServerError(c, "Failed to update password", "PROVIDER_ERROR")
		return
	}

	// The password is already changed at this point. A failed delete only
	// leaves a spent code behind until the TTL index reaps it.
	if err := h.store.DeleteReset(c.Request.Context(), account.UID); err != nil {
		log.Printf("reset-password: delete reset for %s: %v", account.UID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// generateResetCode draws a uniform 6-digit code in [100000, 999999].
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
