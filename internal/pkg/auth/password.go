package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ekanshs25160-bit/Achievement-Management-System/internal/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for new hashes
const BcryptCost = 12

// prehashPrefix tags hashes whose bcrypt input is base64(sha256(password)).
// bcrypt only reads the first 72 bytes, the digest keeps long passwords intact.
const prehashPrefix = "bcrypt-sha256$"

// ErrEmptyPassword is returned when hashing an empty password
var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword returns a salted, algorithm-tagged hash of password.
// Every call uses a fresh salt, so two hashes of the same input differ.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword(prehash(password), BcryptCost)
	if err != nil {
		logger.Error().Err(err).Msg("Password hashing failed")
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return prehashPrefix + string(hashed), nil
}

// CheckPassword reports whether password matches storedHash.
// It returns false for empty input, unknown schemes and malformed hashes.
func CheckPassword(storedHash, password string) (ok bool) {
	if storedHash == "" || password == "" {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Password verification failed")
			ok = false
		}
	}()

	switch {
	case strings.HasPrefix(storedHash, prehashPrefix):
		return compareBcrypt(strings.TrimPrefix(storedHash, prehashPrefix), prehash(password))
	case strings.HasPrefix(storedHash, "$2"):
		return compareBcrypt(storedHash, []byte(password))
	case strings.HasPrefix(storedHash, "scrypt:"), strings.HasPrefix(storedHash, "pbkdf2:"):
		return checkWerkzeugHash(storedHash, password)
	default:
		return false
	}
}

// EqualizeTiming spends one hash comparison against a throwaway hash.
// Login calls it for unknown identifiers so both failure paths cost the same.
func EqualizeTiming(password string) {
	_ = CheckPassword(dummyHash(), password)
}

var dummyHash = sync.OnceValue(func() string {
	hashed, err := HashPassword("timing-equalizer")
	if err != nil {
		return ""
	}
	return hashed
})

func compareBcrypt(hashed string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), password)
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.Warn().Err(err).Msg("Stored bcrypt hash could not be compared")
	}
	return err == nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(encoded, sum[:])
	return encoded
}
