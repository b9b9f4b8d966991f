package keyring

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chinmay1088/walletgate/crypto"
)

const (
	vaultFile    = "credentials.vault"
	endpointFile = "endpoint.txt"
)

// ErrNoVault is returned when no credentials have been stored
var ErrNoVault = errors.New("no stored credentials")

// Manager stores the API credentials of the command-line tool in an
// encrypted vault under dir
type Manager struct {
	dir   string
	mu    sync.Mutex
	creds *crypto.Credentials
}

// DefaultDir returns ~/.walletgate
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".walletgate"), nil
}

// NewManager creates a manager rooted at dir
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the directory the manager writes to
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) vaultPath() string {
	return filepath.Join(m.dir, vaultFile)
}

func (m *Manager) endpointPath() string {
	return filepath.Join(m.dir, endpointFile)
}

// VaultExists reports whether credentials are stored
func (m *Manager) VaultExists() bool {
	_, err := os.Stat(m.vaultPath())
	return err == nil
}

// Save seals creds with password and writes the vault, replacing any
// existing one
func (m *Manager) Save(creds crypto.Credentials, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := crypto.NewVault(creds, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to serialize vault: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(m.vaultPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write vault: %w", err)
	}

	m.creds = &creds
	return nil
}

// Unlock opens the vault and keeps the credentials in memory until Lock
func (m *Manager) Unlock(password string) (*crypto.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.creds != nil {
		return m.creds, nil
	}

	data, err := os.ReadFile(m.vaultPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoVault
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to parse vault: %w", err)
	}

	creds, err := vault.Open(password)
	if err != nil {
		return nil, err
	}
	m.creds = creds
	return creds, nil
}

// Lock drops the in-memory credentials
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
}

// Remove deletes the stored vault
func (m *Manager) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.creds = nil
	if err := os.Remove(m.vaultPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove vault: %w", err)
	}
	return nil
}

// Endpoint returns the saved base URL, or "" when none is set
func (m *Manager) Endpoint() string {
	data, err := os.ReadFile(m.endpointPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetEndpoint saves a base URL; an empty url clears it
func (m *Manager) SetEndpoint(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		if err := os.Remove(m.endpointPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear endpoint: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(m.endpointPath(), []byte(url), 0600); err != nil {
		return fmt.Errorf("failed to write endpoint file: %w", err)
	}
	return nil
}
