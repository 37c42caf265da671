package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/safeland/safetravel-api/internal/config"
)

// Sentinel errors so handlers never have to inspect provider error types.
var (
	ErrEmailExists        = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account is the provider-side view of a user.
type Account struct {
	UID         string
	Email       string
	DisplayName string
}

// Session is the result of a successful password sign-in.
type Session struct {
	UID     string
	Email   string
	IDToken string
}

var (
	initOnce   sync.Once
	authClient *auth.Client
	initErr    error
)

// AuthClient initializes the Firebase Admin SDK and returns the Auth client.
// Initialization runs at most once per process even if the hosting runtime
// re-enters main (serverless cold-start reuse).
func AuthClient(cfg *config.Config) (*auth.Client, error) {
	initOnce.Do(func() {
		opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			initErr = fmt.Errorf("error initializing firebase app: %v", err)
			return
		}

		authClient, initErr = app.Auth(context.Background())
		if initErr != nil {
			initErr = fmt.Errorf("error getting firebase auth client: %v", initErr)
		}
	})

	return authClient, initErr
}

// Service wraps the Firebase Auth client and the identitytoolkit REST
// sign-in endpoint behind one surface for the handlers.
type Service struct {
	client *auth.Client
	signIn *SignInClient
}

func NewService(cfg *config.Config) (*Service, error) {
	client, err := AuthClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		client: client,
		signIn: NewSignInClient(cfg.FirebaseAPIKey),
	}, nil
}

// Verifier returns the underlying token verifier for the auth middleware.
func (s *Service) Verifier() *auth.Client {
	return s.client
}

// CreateAccount registers a new email+password user with the provider.
func (s *Service) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrEmailExists
		}
		return "", err
	}

	return record.UID, nil
}

// CustomToken mints a provider sign-in token for immediate session bootstrap.
func (s *Service) CustomToken(ctx context.Context, uid string) (string, error) {
	return s.client.CustomToken(ctx, uid)
}

// AccountByEmail resolves a provider account by email address.
func (s *Service) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	record, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &Account{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

// UpdatePassword sets a new password on the provider account.
func (s *Service) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).Password(newPassword)
	_, err := s.client.UpdateUser(ctx, uid, params)
	return err
}

// SignInWithPassword verifies credentials against the provider. The Admin
// SDK has no password check, so this goes through the identitytoolkit REST
// endpoint exactly like a client SDK would.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return s.signIn.SignIn(ctx, email, password)
}
