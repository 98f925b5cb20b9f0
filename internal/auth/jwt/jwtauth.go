package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// Config contains the token settings.
type Config struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
}

// ShopClaim optionally pins a token to a shop, skipping the owner lookup.
const ShopClaim = "shop_id"

// Identity is what a verified token says about its bearer.
type Identity struct {
	Subject string
	ShopID  string
}

// New returns the HS256 signer and verifier for secret.
func New(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// VerifyToken checks the signature and expiry of token.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Identity, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	return IdentityFromClaims(t.Subject(), t.PrivateClaims()), nil
}

// IdentityFromClaims reads the identity out of decoded token claims.
func IdentityFromClaims(subject string, claims map[string]interface{}) *Identity {
	id := &Identity{Subject: subject}
	if v, ok := claims[ShopClaim]; ok {
		switch s := v.(type) {
		case string:
			id.ShopID = s
		case float64:
			id.ShopID = fmt.Sprintf("%.0f", s)
		}
	}
	return id
}

// NewToken creates a JWT for subject valid for ttl. A non-empty shopID is
// stored in the shop claim.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject, shopID string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	if shopID != "" {
		claims[ShopClaim] = shopID
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}
