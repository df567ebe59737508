package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is used for newly created accounts. Stored per user
	// so the count can be raised without invalidating old hashes.
	DefaultIterations = 120000

	saltLen = 16
	keyLen  = 32
)

var ErrEmptyPassword = errors.New("empty password")

// Hash derives a PBKDF2-SHA256 hash with a fresh random salt. Returns the
// hex-encoded hash and salt.
func Hash(plain string) (hash, salt string, iterations int, err error) {
	if plain == "" {
		return "", "", 0, ErrEmptyPassword
	}
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", 0, err
	}
	key := pbkdf2.Key([]byte(plain), raw, DefaultIterations, keyLen, sha256.New)
	return hex.EncodeToString(key), hex.EncodeToString(raw), DefaultIterations, nil
}

// Verify recomputes the derived key with the stored salt and iteration count
// and compares in constant time.
func Verify(hash, salt string, iterations int, plain string) bool {
	rawHash, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	if iterations <= 0 {
		return false
	}
	key := pbkdf2.Key([]byte(plain), rawSalt, iterations, len(rawHash), sha256.New)
	return hmac.Equal(key, rawHash)
}
