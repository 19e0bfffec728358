package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claims structure of a session token.
// The identity id travels in the subject claim.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *SessionClaims) GetUserID() string {
	return c.Subject
}

// Session is a freshly issued token for an identity.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// Body returns the JSON body of register and login responses:
// the public user fields plus the token.
func (s *Session) Body() SessionBody {
	return SessionBody{User: *s.User, Token: s.Token}
}

// SessionBody flattens the user fields and the token into one object.
type SessionBody struct {
	User
	Token string `json:"token"`
}
