package export

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/golang/snappy"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keySize          = 32 // AES-256
	nonceSize        = 12 // GCM standard nonce size
	saltSize         = 32 // Salt for PBKDF2
	pbkdf2Iterations = 600000
)

var errArtifactTruncated = errors.New("artifact too short")

// Sealer prepares rendered bytes for storage: snappy compression always,
// AES-256-GCM encryption when a passphrase is set. A fresh salt and nonce
// are generated per artifact and prepended to the ciphertext.
type Sealer struct {
	Passphrase string
}

// Seal compresses and optionally encrypts the rendered artifact
func (s *Sealer) Seal(data []byte) ([]byte, error) {
	compressed := snappy.Encode(nil, data)
	if s.Passphrase == "" {
		return compressed, nil
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(s.Passphrase), salt, pbkdf2Iterations, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, compressed, nil)

	// salt + nonce + ciphertext+tag
	sealed := make([]byte, 0, saltSize+nonceSize+len(ciphertext))
	sealed = append(sealed, salt...)
	sealed = append(sealed, nonce...)
	sealed = append(sealed, ciphertext...)
	return sealed, nil
}

// Open reverses Seal: decrypts when a passphrase is set, then decompresses
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	compressed := sealed
	if s.Passphrase != "" {
		if len(sealed) < saltSize+nonceSize {
			return nil, errArtifactTruncated
		}
		salt := sealed[:saltSize]
		nonce := sealed[saltSize : saltSize+nonceSize]
		ciphertext := sealed[saltSize+nonceSize:]

		key := pbkdf2.Key([]byte(s.Passphrase), salt, pbkdf2Iterations, keySize, sha256.New)
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		compressed, err = gcm.Open(nil, nonce, ciphertext, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt artifact: %w", err)
		}
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress artifact: %w", err)
	}
	return data, nil
}
