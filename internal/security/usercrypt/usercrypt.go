// Package usercrypt keeps usernames out of the database in plaintext.
// Lookups go through a keyed digest of the normalized username; the original
// spelling is stored under an authenticated cipher so login can echo it back.
package usercrypt

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

var ErrCipherTooShort = errors.New("username cipher too short")

type Codec struct {
	digestKey []byte
	aeadKey   [32]byte
}

func New(secret string) *Codec {
	c := &Codec{digestKey: []byte("couch-digest:" + secret)}
	c.aeadKey = sha256.Sum256([]byte("couch-cipher:" + secret))
	return c
}

// Normalize folds case and strips surrounding whitespace so "Alice " and
// "alice" map to the same account.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Digest returns the hex lookup key for a username.
func (c *Codec) Digest(username string) string {
	mac := hmac.New(sha256.New, c.digestKey)
	mac.Write([]byte(Normalize(username)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Seal encrypts the original-case username. Nonce is prepended.
func (c *Codec) Seal(username string) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(c.aeadKey[:])
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, []byte(username), nil), nil
}

// Open recovers the original username from a sealed cipher.
func (c *Codec) Open(cipher []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(c.aeadKey[:])
	if err != nil {
		return "", err
	}
	if len(cipher) < chacha20poly1305.NonceSizeX {
		return "", ErrCipherTooShort
	}
	nonce, sealed := cipher[:chacha20poly1305.NonceSizeX], cipher[chacha20poly1305.NonceSizeX:]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
