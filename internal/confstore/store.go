// Package confstore persists small key/value settings, most notably
// the active IoT Hub connection string.
package confstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// KeyConnectionString is the well-known key the hub connection string
// is stored under.
const KeyConnectionString = "iotHubConnectionString"

// Store is a key/value settings store. userScope selects the per-user
// configuration file over the workspace-local one.
type Store interface {
	Update(key, value string, userScope bool) error
	Get(key string) (string, bool, error)
}

// Memory is an in-process Store for tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Update(key, value string, _ bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// File is a YAML-backed Store. Each write loads, mutates and rewrites
// the whole file, so the stored value is never partially written.
type File struct {
	mu        sync.Mutex
	userPath  string
	localPath string
}

const localConfigName = "hubctl.yaml"

// Open returns a file store rooted at the user config directory and the
// current working directory.
func Open() (*File, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return &File{
		userPath:  filepath.Join(dir, "hubctl", "config.yaml"),
		localPath: localConfigName,
	}, nil
}

func (f *File) Update(key, value string, userScope bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.localPath
	if userScope {
		path = f.userPath
	}

	values, err := load(path)
	if err != nil {
		return err
	}
	values[key] = value

	content, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Get looks the key up in the workspace file first, then the user file.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, path := range []string{f.localPath, f.userPath} {
		values, err := load(path)
		if err != nil {
			return "", false, err
		}
		if v, ok := values[key]; ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

func load(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return values, nil
}
