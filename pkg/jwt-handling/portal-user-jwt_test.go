package jwthandling

import (
	"testing"
	"time"
)

func TestPortalUserToken(t *testing.T) {
	signKey := "test-sign-key"

	t.Run("generate and validate token", func(t *testing.T) {
		token, err := GenerateNewPortalUserToken(time.Minute, "user-1", "test@test.org", "Test User", []string{"applicant"}, map[string]string{"orgId": "org-1"}, signKey)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		claims, valid, err := ValidatePortalUserToken(token, signKey)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if !valid {
			t.Error("token should be valid")
		}
		if claims.Subject != "user-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.Email != "test@test.org" {
			t.Errorf("unexpected email: %s", claims.Email)
		}
		if claims.Payload["orgId"] != "org-1" {
			t.Errorf("unexpected payload: %v", claims.Payload)
		}
	})

	t.Run("reject token signed with other key", func(t *testing.T) {
		token, err := GenerateNewPortalUserToken(time.Minute, "user-1", "test@test.org", "Test User", nil, nil, "other-key")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		_, valid, err := ValidatePortalUserToken(token, signKey)
		if err == nil {
			t.Error("expected validation error")
		}
		if valid {
			t.Error("token should not be valid")
		}
	})

	t.Run("reject expired token", func(t *testing.T) {
		token, err := GenerateNewPortalUserToken(-time.Minute, "user-1", "test@test.org", "Test User", nil, nil, signKey)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		_, valid, err := ValidatePortalUserToken(token, signKey)
		if err == nil {
			t.Error("expected validation error")
		}
		if valid {
			t.Error("token should not be valid")
		}
	})
}
