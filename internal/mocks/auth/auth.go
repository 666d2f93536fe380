package auth

// Package auth contains simple hand-written test doubles for the auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
	domainauth "github.com/target/subscription-admin/internal/domain/auth"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AccountAPI   = (*StubAccountAPI)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
)

// StubAccount is one administrator known to StubAccountAPI.
type StubAccount struct {
	ID       string
	Name     string
	Password string
	Role     string
}

// StubAccountAPI simulates the backend credential endpoints with deterministic tokens.
type StubAccountAPI struct {
	mu sync.Mutex

	Accounts map[string]StubAccount
	// OTP is the code every reset request accepts.
	OTP string
	// TokenTTL is the lifetime encoded in issued access tokens; zero issues tokens without exp.
	TokenTTL time.Duration
	Now      func() time.Time

	OTPRequests []string
	logins      int
}

// NewStubAccountAPI creates a stub with a single superadmin account.
func NewStubAccountAPI() *StubAccountAPI {
	return &StubAccountAPI{
		Accounts: map[string]StubAccount{
			"admin@example.com": {ID: "1", Name: "Ada Admin", Password: "password123", Role: "superadmin"},
		},
		OTP:      "123456",
		TokenTTL: time.Hour,
		Now:      time.Now,
	}
}

func (s *StubAccountAPI) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *StubAccountAPI) issue(subject string) (model.Tokens, error) {
	s.logins++
	claims := jwt.MapClaims{"sub": subject, "jti": fmt.Sprintf("t-%d", s.logins)}
	if s.TokenTTL > 0 {
		claims["exp"] = s.now().Add(s.TokenTTL).Unix()
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("stub-secret"))
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{Access: access, Refresh: fmt.Sprintf("refresh-%d", s.logins)}, nil
}

func rejected(status int, msg string) error {
	return &backendapi.APIError{Message: msg, Status: status}
}

func (s *StubAccountAPI) Login(_ context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.Accounts[req.Email]
	if !ok || acct.Password != req.Password {
		return nil, rejected(http.StatusUnauthorized, "Invalid email or password")
	}
	tokens, err := s.issue(acct.ID)
	if err != nil {
		return nil, err
	}

	resp := &model.LoginResponse{Message: "Login successful"}
	resp.Data.Tokens = tokens
	resp.Data.User = model.AccountUser{
		ID:    model.ID(acct.ID),
		Email: req.Email,
		Name:  acct.Name,
		Role:  acct.Role,
	}
	return resp, nil
}

func (s *StubAccountAPI) SendPasswordResetOTP(_ context.Context, req model.SendOTPRequest) (*model.MessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Accounts[req.Email]; !ok {
		return nil, rejected(http.StatusNotFound, "No administrator with that email")
	}
	s.OTPRequests = append(s.OTPRequests, req.Email)
	return &model.MessageResponse{Message: "OTP sent"}, nil
}

func (s *StubAccountAPI) VerifyPasswordResetOTP(
	_ context.Context,
	req model.VerifyOTPRequest,
) (*model.VerifyOTPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Accounts[req.Email]; !ok || req.OTP != s.OTP {
		return nil, rejected(http.StatusBadRequest, "Invalid or expired OTP")
	}
	resp := &model.VerifyOTPResponse{Message: "OTP verified"}
	resp.Data.ResetToken = "reset:" + req.Email
	return resp, nil
}

func (s *StubAccountAPI) SetPassword(_ context.Context, req model.SetPasswordRequest) (*model.SetPasswordResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const prefix = "reset:"
	if len(req.Token) <= len(prefix) || req.Token[:len(prefix)] != prefix {
		return nil, rejected(http.StatusBadRequest, "Invalid reset token")
	}
	email := req.Token[len(prefix):]
	acct, ok := s.Accounts[email]
	if !ok {
		return nil, rejected(http.StatusBadRequest, "Invalid reset token")
	}
	acct.Password = req.Password1
	s.Accounts[email] = acct

	tokens, err := s.issue(acct.ID)
	if err != nil {
		return nil, err
	}
	resp := &model.SetPasswordResponse{Message: "Password updated"}
	resp.Data.Tokens = tokens
	return resp, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok || id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// DeleteForUser removes every session belonging to userID.
func (m *MemorySessionStore) DeleteForUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, sess := range m.sessions {
		if sess.UserID == userID {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len reports how many sessions are stored.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// ErrNotFound is returned by the in-memory store when a session is not present.
var ErrNotFound = errors.New("session not found")
