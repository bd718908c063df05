// Package session keeps the logged-in user between runs of the desk.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
)

// Key is the entry the session is stored under.
const Key = "currentUser"

var ErrNoSession = errors.New("session: not logged in")

type Session struct {
	Phone string `yaml:"phone"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Token string `yaml:"token"`
}

func (s Session) IsAdmin() bool { return s.Role == models.RoleAdmin }

// FromAuth builds a session from a login answer.
func FromAuth(res dtos.AuthResponse) Session {
	return Session{Phone: res.Phone, Name: res.Name, Role: res.Role, Token: res.Token}
}

// Store persists a single session.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session in a YAML file, keyed by Key so other entries
// in the same file survive.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is session.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "nsdrink-pos", "session.yaml"), nil
}

func (f *FileStore) Path() string { return f.path }

// Load returns ErrNoSession when nothing was saved.
func (f *FileStore) Load() (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return Session{}, err
	}
	node, ok := entries[Key]
	if !ok {
		return Session{}, ErrNoSession
	}
	var s Session
	if err := node.Decode(&s); err != nil {
		return Session{}, fmt.Errorf("parse session %s: %w", f.path, err)
	}
	if s.Phone == "" || s.Token == "" {
		return Session{}, ErrNoSession
	}
	return s, nil
}

func (f *FileStore) Save(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := node.Encode(s); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	entries[Key] = node
	return f.write(entries)
}

// Clear forgets the session. Clearing an empty store is not an error.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := entries[Key]; !ok {
		return nil
	}
	delete(entries, Key)
	return f.write(entries)
}

func (f *FileStore) read() (map[string]yaml.Node, error) {
	entries := map[string]yaml.Node{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file %s: %w", f.path, err)
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", f.path, err)
	}
	if entries == nil {
		entries = map[string]yaml.Node{}
	}
	return entries, nil
}

func (f *FileStore) write(entries map[string]yaml.Node) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file %s: %w", f.path, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file %s: %w", f.path, err)
	}
	return nil
}
