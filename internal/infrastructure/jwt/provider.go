package jwtinfra

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oncampus-api/internal/config"
)

// Token kinds carried in the "token" claim. An access token presented where a
// refresh token is expected (or vice versa) is rejected even when the
// signature and expiry are valid.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims holds the JWT payload fields.
type Claims struct {
	Kind string `json:"token"`
	jwt.RegisteredClaims
}

// Provider signs and verifies RS256 JWTs. The key pair is loaded once at
// startup and never mutated afterwards; share a single Provider as an
// injected dependency.
type Provider struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	privBytes, err := os.ReadFile(cfg.JWTPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privBytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	pubBytes, err := os.ReadFile(cfg.JWTPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return &Provider{
		privateKey: privKey,
		publicKey:  pubKey,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}, nil
}

// SignAccess issues an access token for the given subject.
// Each call builds an independent claims value; nothing is shared with
// SignRefresh, so the two may be called in any order.
func (p *Provider) SignAccess(subject string) (string, error) {
	return p.sign(subject, KindAccess, p.accessTTL)
}

// SignRefresh issues a refresh token for the given subject.
func (p *Provider) SignRefresh(subject string) (string, error) {
	return p.sign(subject, KindRefresh, p.refreshTTL)
}

func (p *Provider) sign(subject, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(p.privateKey)
}

// Verify parses tokenStr, checks the RS256 signature and expiry, and returns
// the decoded claims. Kind enforcement is left to the caller.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.publicKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
