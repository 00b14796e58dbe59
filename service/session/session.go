package session

import (
	"sync"
	"time"

	jwtutil "bookloans/util/jwt"
)

// Token is the bearer credential handed out by the external auth provider.
type Token struct {
	Bearer    string
	ExpiresAt time.Time
}

// Provider is the only session capability the core consumes. The core never
// refreshes or mutates the credential, it just reads the active value at
// call time.
type Provider interface {
	ActiveToken() (Token, bool)
}

// Client holds the externally-issued bearer and reports it active while its
// exp claim is in the future.
type Client struct {
	mu    sync.RWMutex
	token string
	exp   time.Time
	now   func() time.Time
}

func NewClient() *Client { return &Client{now: time.Now} }

// SetToken installs a bearer issued by the auth provider. Tokens without a
// readable exp claim are rejected so a garbage credential never counts as an
// active session.
func (c *Client) SetToken(raw string) error {
	exp, err := jwtutil.ExpiryOf(raw)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = raw
	c.exp = exp
	c.mu.Unlock()
	return nil
}

func (c *Client) Clear() {
	c.mu.Lock()
	c.token = ""
	c.exp = time.Time{}
	c.mu.Unlock()
}

func (c *Client) ActiveToken() (Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" || !c.now().Before(c.exp) {
		return Token{}, false
	}
	return Token{Bearer: c.token, ExpiresAt: c.exp}, true
}

// Static always returns the same token; used in tests and for long-lived
// service credentials.
type Static struct {
	Token string
}

func (s Static) ActiveToken() (Token, bool) {
	if s.Token == "" {
		return Token{}, false
	}
	return Token{Bearer: s.Token}, true
}
