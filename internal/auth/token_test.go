package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// issueToken signs an access token the way the account service does
func issueToken(secret []byte, userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func TestParseToken(t *testing.T) {
	good, _ := issueToken(testSecret, 9, time.Minute)
	userID, tokenID, err := ParseToken(testSecret, good)
	if err != nil || userID != 9 || tokenID == "" {
		t.Fatalf("Expected user 9 with a token id, got %d %q err=%v", userID, tokenID, err)
	}

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "9"}).SignedString(testSecret)
	wrongAlg, _ := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.RegisteredClaims{
		Subject:   "9",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(testSecret)
	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "root",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(testSecret)

	tests := map[string]string{
		"no expiry":   noExpiry,
		"wrong alg":   wrongAlg,
		"bad subject": badSubject,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := ParseToken(testSecret, token); err == nil {
				t.Error("Expected token to be rejected")
			}
		})
	}
}
