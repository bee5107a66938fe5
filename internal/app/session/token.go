package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wostup/wostup-go/internal/app/models"
)

// Claims is the payload of the signed session cookie. It names the
// server-side session record; the record itself stays canonical.
type Claims struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type tokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func newTokenCodec(secret string, ttl time.Duration) *tokenCodec {
	return &tokenCodec{secret: []byte(secret), ttl: ttl}
}

func (c *tokenCodec) Sign(sessionID string, user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (c *tokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
