// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin JWT with convenience accessors.
//
// The "sub" claim carries the admin login. SignedString is the compact form
// sent in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
}

// GetLogin returns the admin login stored in the "sub" claim.
func (t *Token) GetLogin() (string, error) {
	login, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting login from token: %w", err)
	}
	if login == "" {
		return "", fmt.Errorf("error extracting login from token: empty subject")
	}

	return login, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
