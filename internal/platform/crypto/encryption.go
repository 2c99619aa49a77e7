package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	keySize           = 32
	saltSize          = 16
	minPassphraseSize = 12

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrWeakPassphrase     = fmt.Errorf("export key must be a hex or base64 encoded %d-byte key or a passphrase of at least %d characters", keySize, minPassphraseSize)
)

// Service encrypts export files with AES-256-GCM. A key that decodes from hex
// or base64 to exactly 32 bytes is used directly; anything else is treated as
// a passphrase and stretched with argon2id under a random per-payload salt.
type Service struct {
	key        []byte
	passphrase []byte
}

func New(key string) (*Service, error) {
	if key == "" {
		return &Service{}, nil
	}
	if decoded := decodeKey(key); len(decoded) == keySize {
		return &Service{key: decoded}, nil
	}
	if len(key) < minPassphraseSize {
		return nil, ErrWeakPassphrase
	}
	return &Service{passphrase: []byte(key)}, nil
}

func (s *Service) Configured() bool {
	return len(s.key) == keySize || len(s.passphrase) > 0
}

func (s *Service) Encrypt(plain []byte) ([]byte, error) {
	if len(plain) == 0 {
		return nil, nil
	}
	if !s.Configured() {
		return plain, nil
	}
	var salt []byte
	if s.key == nil {
		salt = make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, err
		}
	}
	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	out := append(salt, nonce...)
	return gcm.Seal(out, nonce, plain, nil), nil
}

func (s *Service) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, nil
	}
	if !s.Configured() {
		return ciphertext, nil
	}
	var salt []byte
	if s.key == nil {
		if len(ciphertext) < saltSize {
			return nil, ErrCiphertextTooShort
		}
		salt, ciphertext = ciphertext[:saltSize], ciphertext[saltSize:]
	}
	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce := ciphertext[:gcm.NonceSize()]
	data := ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, data, nil)
}

func (s *Service) aead(salt []byte) (cipher.AEAD, error) {
	key := s.key
	if key == nil {
		key = argon2.IDKey(s.passphrase, salt, argonTime, argonMemory, argonThreads, keySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func decodeKey(raw string) []byte {
	if len(raw) == 64 {
		if decoded, err := hex.DecodeString(raw); err == nil {
			return decoded
		}
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	return nil
}
