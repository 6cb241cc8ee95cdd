package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the user id plus the registered subject.
// All other registered claims stay unset so that identical input signs
// to identical bytes.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies bearer tokens with a fixed HMAC-SHA256
// secret.
type Issuer struct {
	secret []byte
}

// NewIssuer constructs an Issuer from cfg.
func NewIssuer(cfg Config) *Issuer {
	return &Issuer{secret: cfg.Secret}
}

// Issue signs a token for the given account. The subject is lower-cased
// before signing; lookups during validation use the subject as encoded.
func (i *Issuer) Issue(subject string, userID int64) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strings.ToLower(subject),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and checks the signature of a raw token. Every failure
// mode (bad signature, malformed input, non-HS256 algorithm) collapses
// to ErrInvalidToken.
func (i *Issuer) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
