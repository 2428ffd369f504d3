package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a cashier session token. Tokens are
// issued by the store server; this side only reads them.
type SessionClaims struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BranchName string `json:"branch_name"`
	jwt.RegisteredClaims
}

// SessionManager extracts identity from session tokens
type SessionManager struct {
	secretKey []byte
	parser    *jwt.Parser
}

// NewSessionManager creates a session manager. With an empty secret the
// signature is not checked and the server remains the authority on validity;
// expiry is still enforced.
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secret),
		parser:    jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}), jwt.WithExpirationRequired()),
	}
}

// Verifies reports whether signatures are checked
func (m *SessionManager) Verifies() bool {
	return len(m.secretKey) > 0
}

// ParseSession validates a session token and returns its claims
func (m *SessionManager) ParseSession(tokenString string) (*SessionClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	claims := &SessionClaims{}
	if m.Verifies() {
		token, err := m.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secretKey, nil
		})
		if err != nil {
			return nil, err
		}
		if !token.Valid {
			return nil, errors.New("invalid token")
		}
	} else {
		token, _, err := m.parser.ParseUnverified(tokenString, claims)
		if err != nil {
			return nil, err
		}
		// Unsigned ("none") and asymmetric tokens are refused even unverified
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
			return nil, jwt.ErrTokenExpired
		}
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
