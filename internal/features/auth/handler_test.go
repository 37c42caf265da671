package auth

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/safeland/safetravel-api/internal/identity"
)

type fakeIdentity struct {
	nextUID   string
	createErr error
	signInErr error

	accounts  map[string]identity.Account // keyed by email
	passwords map[string]string           // keyed by uid
	created   []string
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, email)
	return f.nextUID, nil
}

func (f *fakeIdentity) CustomToken(ctx context.Context, uid string) (string, error) {
	return "custom-token-" + uid, nil
}

func (f *fakeIdentity) AccountByEmail(ctx context.Context, email string) (*identity.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return &account, nil
}

func (f *fakeIdentity) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	if f.passwords == nil {
		f.passwords = map[string]string{}
	}
	f.passwords[uid] = newPassword
	return nil
}

func (f *fakeIdentity) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &identity.Session{UID: f.nextUID, Email: email, IDToken: "id-token"}, nil
}

type fakeStore struct {
	profiles   map[string]*Profile
	resets     map[string]*PasswordReset
	profileErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: map[string]*Profile{},
		resets:   map[string]*PasswordReset{},
	}
}

func (f *fakeStore) CreateProfile(ctx context.Context, profile *Profile) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	profile.CreatedAt = time.Now()
	f.profiles[profile.UID] = profile
	return nil
}

func (f *fakeStore) ProfileByUID(ctx context.Context, uid string) (*Profile, error) {
	return f.profiles[uid], nil
}

func (f *fakeStore) UpsertReset(ctx context.Context, reset *PasswordReset) error {
	f.resets[reset.UID] = reset
	return nil
}

func (f *fakeStore) ResetByUID(ctx context.Context, uid string) (*PasswordReset, error) {
	return f.resets[uid], nil
}

func (f *fakeStore) DeleteReset(ctx context.Context, uid string) error {
	delete(f.resets, uid)
	return nil
}

type fakeSender struct {
	email string
	code  string
}

func (f *fakeSender) SendResetCode(ctx context.Context, email, code string) error {
	f.email = email
	f.code = code
	return nil
}

func newTestRouter(h *Handler, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/signup", h.Signup)
	r.POST("/api/login", h.Login)
	r.GET("/api/user", func(c *gin.Context) {
		if uid == "" {
			c.AbortWithStatus(401)
			return
		}
		c.Set("uid", uid)
		h.Me(c)
	})
	r.POST("/api/forgot-password", h.ForgotPassword)
	r.POST("/api/reset-password", h.ResetPassword)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestSignup_MissingFields(t *testing.T) {
	ident := &fakeIdentity{nextUID: "u1"}
	store := newFakeStore()
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	for _, body := range []string{
		`{}`,
		`{"email":"ama@example.com","name":"Ama"}`,
		`{"password":"s3cret!","name":"Ama"}`,
		`{"email":"ama@example.com","password":"s3cret!"}`,
	} {
		w, _ := doJSON(t, r, "POST", "/api/signup", body)
		require.Equal(t, 400, w.Code, "body %s", body)
	}

	require.Empty(t, ident.created)
	require.Empty(t, store.profiles)
}

func TestSignup_Success(t *testing.T) {
	ident := &fakeIdentity{nextUID: "uid-1"}
	store := newFakeStore()
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	w, body := doJSON(t, r, "POST", "/api/signup",
		`{"email":"ama@example.com","password":"s3cret!","name":"Ama","surname":"Diallo","originCountry":"Senegal"}`)

	require.Equal(t, 201, w.Code)
	require.Equal(t, "uid-1", body["uid"])
	require.Equal(t, "custom-token-uid-1", body["token"])

	profile := store.profiles["uid-1"]
	require.NotNil(t, profile)
	require.Equal(t, "ama@example.com", profile.Email)
	require.Equal(t, "Ama", profile.Name)
	require.Equal(t, "Diallo", profile.Surname)
	require.Equal(t, "Senegal", profile.OriginCountry)
	require.False(t, profile.CreatedAt.IsZero())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ident := &fakeIdentity{nextUID: "u1", createErr: identity.ErrEmailExists}
	store := newFakeStore()
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/signup",
		`{"email":"ama@example.com","password":"s3cret!","name":"Ama"}`)

	require.Equal(t, 409, w.Code)
	require.Empty(t, store.profiles)
}

func TestSignup_ProfileWriteFails(t *testing.T) {
	ident := &fakeIdentity{nextUID: "u1"}
	store := newFakeStore()
	store.profileErr = context.DeadlineExceeded
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/signup",
		`{"email":"ama@example.com","password":"s3cret!","name":"Ama"}`)

	// account exists, profile does not; the gap surfaces as 500 here and
	// 404 on GET /api/user later
	require.Equal(t, 500, w.Code)
	require.Equal(t, []string{"ama@example.com"}, ident.created)
	require.Empty(t, store.profiles)
}

func TestLogin_MissingFields(t *testing.T) {
	r := newTestRouter(NewHandler(&fakeIdentity{}, newFakeStore(), &fakeSender{}), "")

	for _, body := range []string{`{}`, `{"email":"ama@example.com"}`, `{"password":"x"}`} {
		w, _ := doJSON(t, r, "POST", "/api/login", body)
		require.Equal(t, 400, w.Code, "body %s", body)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ident := &fakeIdentity{signInErr: identity.ErrInvalidCredentials}
	r := newTestRouter(NewHandler(ident, newFakeStore(), &fakeSender{}), "")

	w, body := doJSON(t, r, "POST", "/api/login",
		`{"email":"ama@example.com","password":"wrong"}`)

	require.Equal(t, 401, w.Code)
	require.NotContains(t, body, "token")
	require.Equal(t, "Invalid email or password", body["error"])
}

func TestLogin_Success(t *testing.T) {
	ident := &fakeIdentity{nextUID: "uid-7"}
	r := newTestRouter(NewHandler(ident, newFakeStore(), &fakeSender{}), "")

	w, body := doJSON(t, r, "POST", "/api/login",
		`{"email":"ama@example.com","password":"s3cret!"}`)

	require.Equal(t, 200, w.Code)
	require.Equal(t, "id-token", body["token"])
	require.Equal(t, "uid-7", body["uid"])
	require.Equal(t, "ama@example.com", body["email"])
}

func TestMe_ProfileMissing(t *testing.T) {
	r := newTestRouter(NewHandler(&fakeIdentity{}, newFakeStore(), &fakeSender{}), "uid-9")

	w, _ := doJSON(t, r, "GET", "/api/user", "")
	require.Equal(t, 404, w.Code)
}

func TestMe_Success(t *testing.T) {
	store := newFakeStore()
	store.profiles["uid-9"] = &Profile{UID: "uid-9", Email: "ama@example.com", Name: "Ama"}
	r := newTestRouter(NewHandler(&fakeIdentity{}, store, &fakeSender{}), "uid-9")

	w, body := doJSON(t, r, "GET", "/api/user", "")
	require.Equal(t, 200, w.Code)
	require.Equal(t, "uid-9", body["uid"])
	require.Equal(t, "ama@example.com", body["email"])
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{}}
	store := newFakeStore()
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/forgot-password", `{"email":"nobody@example.com"}`)

	require.Equal(t, 404, w.Code)
	require.Empty(t, store.resets)
}

func TestForgotPassword_Success(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{
		"ama@example.com": {UID: "uid-1", Email: "ama@example.com"},
	}}
	store := newFakeStore()
	sender := &fakeSender{}
	r := newTestRouter(NewHandler(ident, store, sender), "")

	w, _ := doJSON(t, r, "POST", "/api/forgot-password", `{"email":"ama@example.com"}`)
	require.Equal(t, 200, w.Code)

	reset := store.resets["uid-1"]
	require.NotNil(t, reset)
	require.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), reset.Code)
	require.Equal(t, "ama@example.com", reset.Email)
	require.WithinDuration(t, reset.CreatedAt.Add(resetCodeTTL), reset.ExpiresAt, time.Second)

	// the code is handed to the sender collaborator
	require.Equal(t, "ama@example.com", sender.email)
	require.Equal(t, reset.Code, sender.code)
}

func TestForgotPassword_OverwritesPrevious(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{
		"ama@example.com": {UID: "uid-1", Email: "ama@example.com"},
	}}
	store := newFakeStore()
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	doJSON(t, r, "POST", "/api/forgot-password", `{"email":"ama@example.com"}`)
	first := store.resets["uid-1"]

	doJSON(t, r, "POST", "/api/forgot-password", `{"email":"ama@example.com"}`)
	second := store.resets["uid-1"]

	require.Len(t, store.resets, 1)
	require.True(t, !second.ExpiresAt.Before(first.ExpiresAt))
}

func TestResetPassword_MissingFields(t *testing.T) {
	r := newTestRouter(NewHandler(&fakeIdentity{}, newFakeStore(), &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/reset-password", `{"email":"ama@example.com","code":"123456"}`)
	require.Equal(t, 400, w.Code)
}

func TestResetPassword_NoPendingRequest(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{
		"ama@example.com": {UID: "uid-1", Email: "ama@example.com"},
	}}
	r := newTestRouter(NewHandler(ident, newFakeStore(), &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/reset-password",
		`{"email":"ama@example.com","code":"123456","newPassword":"n3wpass"}`)
	require.Equal(t, 404, w.Code)
}

func TestResetPassword_WrongCode(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{
		"ama@example.com": {UID: "uid-1", Email: "ama@example.com"},
	}}
	store := newFakeStore()
	store.resets["uid-1"] = &PasswordReset{
		UID:       "uid-1",
		Code:      "654321",
		Email:     "ama@example.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/reset-password",
		`{"email":"ama@example.com","code":"123456","newPassword":"n3wpass"}`)

	require.Equal(t, 400, w.Code)
	require.Empty(t, ident.passwords)
	require.NotNil(t, store.resets["uid-1"])
}

func TestResetPassword_ExpiredCode(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{
		"ama@example.com": {UID: "uid-1", Email: "ama@example.com"},
	}}
	store := newFakeStore()
	store.resets["uid-1"] = &PasswordReset{
		UID:       "uid-1",
		Code:      "123456",
		Email:     "ama@example.com",
		CreatedAt: time.Now().Add(-20 * time.Minute),
		ExpiresAt: time.Now().Add(-10 * time.Minute),
	}
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	w, _ := doJSON(t, r, "POST", "/api/reset-password",
		`{"email":"ama@example.com","code":"123456","newPassword":"n3wpass"}`)

	require.Equal(t, 400, w.Code)
	require.Empty(t, ident.passwords)
}

func TestResetPassword_SuccessIsSingleUse(t *testing.T) {
	ident := &fakeIdentity{accounts: map[string]identity.Account{
		"ama@example.com": {UID: "uid-1", Email: "ama@example.com"},
	}}
	store := newFakeStore()
	store.resets["uid-1"] = &PasswordReset{
		UID:       "uid-1",
		Code:      "123456",
		Email:     "ama@example.com",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	r := newTestRouter(NewHandler(ident, store, &fakeSender{}), "")

	body := `{"email":"ama@example.com","code":"123456","newPassword":"n3wpass"}`

	w, _ := doJSON(t, r, "POST", "/api/reset-password", body)
	require.Equal(t, 200, w.Code)
	require.Equal(t, "n3wpass", ident.passwords["uid-1"])
	require.Empty(t, store.resets)

	// the spent code no longer works
	w, _ = doJSON(t, r, "POST", "/api/reset-password", body)
	require.Equal(t, 404, w.Code)
}

func TestGenerateResetCode_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}
