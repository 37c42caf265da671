package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safeland/safetravel-api/internal/config"
	"github.com/safeland/safetravel-api/internal/identity"
	"github.com/safeland/safetravel-api/internal/middleware"
	"github.com/safeland/safetravel-api/internal/pkg/mailer"
	"github.com/safeland/safetravel-api/internal/pkg/ratelimit"
)

// RegisterRoutes wires the auth endpoints under the /api group.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, identitySvc *identity.Service) {
	repo := NewRepository(db)
	sender := mailer.NewFromConfig(cfg)
	handler := NewHandler(identitySvc, repo, sender)
	authMiddleware := middleware.Auth(identitySvc.Verifier())

	// Credential endpoints get a per-IP limiter against brute force
	loginLimiter := ratelimit.New(10, time.Minute)
	loginLimiter.StartCleanup(5 * time.Minute)
	forgotLimiter := ratelimit.New(5, time.Minute)
	forgotLimiter.StartCleanup(5 * time.Minute)

	router.POST("/signup", handler.Signup)
	router.POST("/login", ratelimit.Middleware(loginLimiter), handler.Login)
	router.GET("/user", authMiddleware, handler.Me)
	router.POST("/forgot-password", ratelimit.Middleware(forgotLimiter), handler.ForgotPassword)
	router.POST("/reset-password", handler.ResetPassword)
}
