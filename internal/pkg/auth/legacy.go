package auth

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Werkzeug defaults when the method string omits parameters.
const (
	werkzeugPBKDF2Iterations = 600000
	werkzeugScryptN          = 1 << 15
	werkzeugScryptR          = 8
	werkzeugScryptP          = 1
	werkzeugScryptKeyLen     = 64
)

// checkWerkzeugHash verifies "method$salt$hexdigest" strings produced by
// werkzeug.security, e.g. "scrypt:32768:8:1$salt$..." or "pbkdf2:sha256:600000$salt$...".
func checkWerkzeugHash(storedHash, password string) bool {
	parts := strings.SplitN(storedHash, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, digestHex := parts[0], parts[1], parts[2]

	want, err := hex.DecodeString(digestHex)
	if err != nil || len(want) == 0 {
		return false
	}

	var got []byte
	switch {
	case strings.HasPrefix(method, "scrypt"):
		got, err = werkzeugScrypt(method, salt, password)
	case strings.HasPrefix(method, "pbkdf2"):
		got, err = werkzeugPBKDF2(method, salt, password)
	default:
		return false
	}
	if err != nil || got == nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}

func werkzeugScrypt(method, salt, password string) ([]byte, error) {
	args := strings.Split(method, ":")[1:]
	n, r, p := werkzeugScryptN, werkzeugScryptR, werkzeugScryptP
	if len(args) == 3 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil {
			return nil, err
		}
		if r, err = strconv.Atoi(args[1]); err != nil {
			return nil, err
		}
		if p, err = strconv.Atoi(args[2]); err != nil {
			return nil, err
		}
	}
	return scrypt.Key([]byte(password), []byte(salt), n, r, p, werkzeugScryptKeyLen)
}

func werkzeugPBKDF2(method, salt, password string) ([]byte, error) {
	args := strings.Split(method, ":")[1:]
	digest := "sha256"
	iterations := werkzeugPBKDF2Iterations
	if len(args) > 0 && args[0] != "" {
		digest = args[0]
	}
	if len(args) > 1 {
		var err error
		if iterations, err = strconv.Atoi(args[1]); err != nil {
			return nil, err
		}
	}

	var newHash func() hash.Hash
	switch digest {
	case "sha1":
		newHash = sha1.New
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return nil, nil
	}

	return pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash), nil
}
