package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
	testUserID = "0190a1b2-0000-7000-8000-000000000001"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	token, err := GenerateJWTToken(testIssuer, testUserID, 30*24*time.Hour, testKey, now)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != testUserID {
		t.Errorf("expected UserID %s, got %s", testUserID, token.UserID)
	}

	claims, ok := token.Token.Claims.(*models.Claims)
	if !ok {
		t.Fatal("could not cast claims to *models.Claims")
	}
	if claims.UserID != testUserID || claims.Subject != testUserID {
		t.Errorf("expected id and sub %s, got %s / %s", testUserID, claims.UserID, claims.Subject)
	}
	if claims.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, claims.Issuer)
	}
	if !claims.IssuedAt.Time.Equal(now) {
		t.Errorf("expected iat %v, got %v", now, claims.IssuedAt.Time)
	}
	if want := now.Add(720 * time.Hour); !claims.ExpiresAt.Time.Equal(want) {
		t.Errorf("expected exp %v, got %v", want, claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUserID, time.Hour, testKey},
		{"empty user id", testIssuer, "", time.Hour, testKey},
		{"zero duration", testIssuer, testUserID, 0, testKey},
		{"empty key", testIssuer, testUserID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key, time.Now())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, time.Now())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, time.Now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != testUserID {
		t.Errorf("expected UserID %s, got %s", testUserID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuedAt := time.Now()
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, issuedAt)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	later := func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, later)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey, time.Now())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.Claims{
		UserID: testUserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID:           testUserID,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
	}).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign no-exp token: %v", err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign no-subject token: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"garbage", "not.a.jwt", testKey, testIssuer},
		{"wrong key", valid.SignedString, "other-key", testIssuer},
		{"wrong issuer", valid.SignedString, testKey, "other-issuer"},
		{"tampered payload", tamper(valid.SignedString), testKey, testIssuer},
		{"alg none", noneToken, testKey, testIssuer},
		{"missing exp", noExpiry, testKey, testIssuer},
		{"missing subject", noSubject, testKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, time.Now)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				t.Fatalf("expected non-expiry error, got: %v", err)
			}
		})
	}
}

// tamper flips one character of the payload segment.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)
	return strings.Join(parts, ".")
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", wantToken: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: true},
		{name: "extra parts", header: "Bearer abc extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("expected %q, got %q", tt.wantToken, token)
			}
		})
	}
}
