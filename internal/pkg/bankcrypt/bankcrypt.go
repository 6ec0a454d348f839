// Package bankcrypt encrypts payout bank details before they reach the
// relational store. Uses XChaCha20-Poly1305 with a random nonce prepended to
// the ciphertext; output is hex so the columns stay plain text.
package bankcrypt

import (
	"crypto/rand"
	"encoding/hex"

	"invopay/internal/pkg/errs"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrInvalidKey        = errs.New("bank detail key must be 32 bytes")
	ErrInvalidCiphertext = errs.New("invalid bank detail ciphertext")
)

type Cipher struct {
	key []byte
}

// NewCipher expects a hex-encoded 32 byte key.
func NewCipher(hexKey string) (*Cipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidKey)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKey
	}
	return &Cipher{key: key}, nil
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to initialize cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errs.Wrap(err, "failed to generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

func (c *Cipher) Decrypt(encoded string) (string, error) {
	sealed, err := hex.DecodeString(encoded)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidCiphertext)
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to initialize cipher")
	}

	if len(sealed) < aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidCiphertext)
	}
	return string(plaintext), nil
}
