package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultSignInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// SignInClient calls the identitytoolkit password sign-in endpoint with the
// project web API key. Endpoint is a field so tests can point it at a stub.
type SignInClient struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

func NewSignInClient(apiKey string) *SignInClient {
	return &SignInClient{
		APIKey:     apiKey,
		Endpoint:   defaultSignInEndpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges email+password for an ID token. A provider rejection
// (wrong password, unknown user, disabled account) comes back as
// ErrInvalidCredentials; anything else is a transport failure.
func (c *SignInClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?key=%s", c.Endpoint, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Error != nil || resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidCredentials
	}

	return &Session{
		UID:     payload.LocalID,
		Email:   payload.Email,
		IDToken: payload.IDToken,
	}, nil
}
