// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for accountID.
//
// The token carries iss, sub (the account id), iat and exp. All parameters
// are required.
func GenerateJWTToken(issuer string, accountID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, AccountID: accountID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the account id from the subject claim.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to account id: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, AccountID: accountID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseAccountIDFromJWT reads the subject of a token without verifying its
// signature. The client uses it to learn its own account id after login.
func ParseAccountIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
