// Package idcrypt encodes numeric row ids as opaque tokens for use in
// public URLs, so guests can reference a store table without learning or
// guessing its database id.
package idcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrInvalidToken = errors.New("invalid encrypted id")

type Codec struct {
	aead cipher.AEAD
}

// NewCodec builds a codec from a 16, 24, or 32 byte AES key.
func NewCodec(key []byte) (*Codec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher -> %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM -> %w", err)
	}

	return &Codec{aead: aead}, nil
}

func (c *Codec) EncryptID(id uint) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand.Reader -> %w", err)
	}

	plaintext := []byte(strconv.FormatUint(uint64(id), 10))
	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)

	return hex.EncodeToString(sealed), nil
}

func (c *Codec) DecryptID(token string) (uint, error) {
	sealed, err := hex.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if len(sealed) < c.aead.NonceSize() {
		return 0, ErrInvalidToken
	}

	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(string(plaintext), 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}
