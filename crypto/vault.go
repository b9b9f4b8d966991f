package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters
	ScryptN = 1 << 15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256

	saltLen      = 32
	vaultVersion = 2
)

// ErrWrongPassword is returned when the vault cannot be opened
var ErrWrongPassword = errors.New("wrong password or corrupted vault")

// Vault is an API credential sealed with a password-derived key
type Vault struct {
	Version int    `json:"version"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	Data    []byte `json:"data"`
}

// Credentials is the plaintext sealed inside a Vault
type Credentials struct {
	APIKey    string    `json:"apiKey"`
	BaseURL   string    `json:"baseUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewVault seals creds with password
func NewVault(creds Credentials, password string) (*Vault, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("api key is empty")
	}
	if creds.CreatedAt.IsZero() {
		creds.CreatedAt = time.Now().UTC()
	}

	// Generate random salt
	salt, err := randomBytes(saltLen)
	if err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	// Derive key from password
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	// Fresh nonce for every seal
	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	// Encrypt credentials
	plaintext, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}
	defer clearBytes(plaintext)

	return &Vault{
		Version: vaultVersion,
		Salt:    salt,
		Nonce:   nonce,
		Data:    gcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Open decrypts the vault. Any authentication failure is reported as
// ErrWrongPassword.
func (v *Vault) Open(password string) (*Credentials, error) {
	if v.Version != vaultVersion {
		return nil, fmt.Errorf("unsupported vault version %d", v.Version)
	}

	// Derive key from password
	key, err := deriveKey(password, v.Salt)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(v.Nonce) != gcm.NonceSize() {
		return nil, ErrWrongPassword
	}
	// Decrypt credentials
	plaintext, err := gcm.Open(nil, v.Nonce, v.Data, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}
	defer clearBytes(plaintext)

	var creds Credentials
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}
	return &creds, nil
}

// ValidatePassword reports whether password opens the vault
func (v *Vault) ValidatePassword(password string) bool {
	_, err := v.Open(password)
	return err == nil
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("key derivation: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes: %w", err)
	}
	return cipher.NewGCM(block)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
