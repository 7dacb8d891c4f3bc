// Package session ties the remote API to the local token slot: logging in
// stores the token, shop calls read it back.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/logs"
	"github.com/Jinsoo1210/carrot/internal/tokenstore"
)

//go:generate mockgen -source=session.go -destination=mock_session_test.go -package=session_test

// ErrNotLoggedIn is returned by calls that need a stored token when the
// slot is empty.
var ErrNotLoggedIn = errors.New("not logged in")

// Backend is the subset of the remote API a session uses.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, email, password string) error
	ShopItems(ctx context.Context, token string) ([]api.Item, error)
	Purchase(ctx context.Context, token string, itemID int) (api.Purchase, error)
}

// TokenSlot is the one-slot token storage a session reads and writes.
type TokenSlot interface {
	Set(token string) error
	Get() (string, error)
	Remove() error
}

// LoginResult reports a successful login. StoreErr is set when the token
// could not be saved; the login itself still counts as successful.
type LoginResult struct {
	Token    string
	StoreErr error
}

// Session combines a Backend with a TokenSlot.
type Session struct {
	backend Backend
	tokens  TokenSlot
}

// New returns a session.
func New(b Backend, t TokenSlot) *Session {
	return &Session{backend: b, tokens: t}
}

// Login authenticates and stores the returned token.
func (s *Session) Login(ctx context.Context, username, password string) (LoginResult, error) {
	tok, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return LoginResult{}, err
	}
	res := LoginResult{Token: tok}
	if err := s.tokens.Set(tok); err != nil {
		logs.Logger.Printf("token storage failed: %v", err)
		res.StoreErr = err
	}
	return res, nil
}

// Signup registers an account. It does not log in.
func (s *Session) Signup(ctx context.Context, email, password string) error {
	return s.backend.Signup(ctx, email, password)
}

// Logout clears the stored token.
func (s *Session) Logout() error {
	return s.tokens.Remove()
}

// LoggedIn reports whether a token is stored.
func (s *Session) LoggedIn() (bool, error) {
	_, err := s.tokens.Get()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, tokenstore.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Shop lists the items for sale.
func (s *Session) Shop(ctx context.Context) ([]api.Item, error) {
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.backend.ShopItems(ctx, tok)
}

// Buy purchases itemID.
func (s *Session) Buy(ctx context.Context, itemID int) (api.Purchase, error) {
	tok, err := s.token()
	if err != nil {
		return api.Purchase{}, err
	}
	p, err := s.backend.Purchase(ctx, tok, itemID)
	if err != nil {
		return api.Purchase{}, err
	}
	logs.Logger.Printf("purchased item %d, balance %d", itemID, p.NewBalance)
	return p, nil
}

func (s *Session) token() (string, error) {
	tok, err := s.tokens.Get()
	if errors.Is(err, tokenstore.ErrNotFound) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return tok, nil
}
