package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SigningSecret signs the session cookie. It is a compile-time literal,
// identical in every deployment, so anyone who reads this source (or
// /vuln/misconfig, which prints it) can forge session tokens.
const SigningSecret = "super-secret-key-12345"

// CookieName is the session cookie. It is set without HttpOnly or
// Secure so that the XSS exercise can steal it.
const CookieName = "vulnlab_session"

var errInvalidToken = errors.New("invalid session token")

// MintToken creates a fresh session id and wraps it in a signed HS256
// JWT for the cookie. The token carries no expiry claim; sessions live
// until logout or process restart.
func MintToken() (token, sid string, err error) {
	sid, err = randomHex(16)
	if err != nil {
		return "", "", err
	}
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(SigningSecret))
	if err != nil {
		return "", "", err
	}
	return token, sid, nil
}

// ParseToken validates a cookie value and returns the session id inside
// it. Any parse or signature failure yields an error; callers respond by
// minting a brand-new session.
func ParseToken(token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(SigningSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errInvalidToken
	}
	return sid, nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
