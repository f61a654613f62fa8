package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenConfig struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

var tokens tokenConfig

// InitTokens configures token signing. Must be called before issuing or
// validating access tokens.
func InitTokens(secret string, issuer string, ttl time.Duration) {
	tokens = tokenConfig{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject
func GenerateAccessToken(userID string) (string, error) {
	if len(tokens.secret) == 0 {
		return "", fmt.Errorf("token signing is not configured")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    tokens.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokens.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tokens.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates an access token, returning the
// user ID it was issued for.
func ValidateAccessToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tokens.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != tokens.issuer {
		return "", fmt.Errorf("invalid issuer: expected %s, got %s", tokens.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.Subject, nil
}
