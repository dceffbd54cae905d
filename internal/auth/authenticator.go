package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"magazyn-plikow/internal/models"
)

var (
	ErrAuth           = errors.New("authentication failed")
	ErrUnknownUser    = fmt.Errorf("%w: unknown user", ErrAuth)
	ErrBadCredentials = fmt.Errorf("%w: bad credentials", ErrAuth)
	ErrInvalidInput   = errors.New("username and password are required")
)

const TokenTypeBearer = "bearer"

type CredentialStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type SessionStore interface {
	Put(username, token string)
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Authenticator turns credentials into a session. A user is logged in for as
// long as the session store holds an entry under their username.
type Authenticator struct {
	users    CredentialStore
	issuer   *Issuer
	sessions SessionStore
	ttl      time.Duration
}

func NewAuthenticator(users CredentialStore, issuer *Issuer, sessions SessionStore, ttl time.Duration) *Authenticator {
	return &Authenticator{
		users:    users,
		issuer:   issuer,
		sessions: sessions,
		ttl:      ttl,
	}
}

func (a *Authenticator) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return a.users.CreateUser(ctx, username, hash)
}

// Login replaces any existing session for username on success and leaves the
// session store untouched on failure.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Token, error) {
	user, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownUser
	}
	if !CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	accessToken, err := a.issuer.Issue(user.Username, a.ttl)
	if err != nil {
		return nil, err
	}

	a.sessions.Put(user.Username, accessToken)

	return &Token{AccessToken: accessToken, TokenType: TokenTypeBearer}, nil
}
