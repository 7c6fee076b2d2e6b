package mocks

import (
	"fmt"
	"sort"
	"sync"

	"github.com/user/bouncer/pkg/ports"
)

type node struct {
	data []byte
	dir  bool
}

// FileSystem is an in-memory ports.FileSystem. Setting one of the Func
// fields replaces the built-in behaviour for that method.
type FileSystem struct {
	mu    sync.RWMutex
	nodes map[string]node

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)

	// WriteOrder lists every WriteFile path in call order, including
	// calls handled by WriteFileFunc.
	WriteOrder []string
}

// NewFileSystem returns an empty FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{nodes: make(map[string]node)}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	n, ok := m.nodes[path]
	m.mu.RUnlock()
	if !ok || n.dir {
		return nil, fmt.Errorf("mock fs: no such file %s", path)
	}
	return n.data, nil
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	m.WriteOrder = append(m.WriteOrder, path)
	m.mu.Unlock()
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}

	m.mu.Lock()
	m.nodes[path] = node{data: append([]byte(nil), data...)}
	m.mu.Unlock()
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	if _, ok := m.nodes[path]; !ok {
		m.nodes[path] = node{dir: true}
	}
	m.mu.Unlock()
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	_, ok := m.nodes[path]
	m.mu.RUnlock()
	return ok, nil
}

// GetFile returns the stored contents of path.
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[path]
	if !ok || n.dir {
		return nil, false
	}
	return n.data, true
}

// Paths returns the stored file paths in lexical order.
func (m *FileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var paths []string
	for p, n := range m.nodes {
		if !n.dir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

var _ ports.FileSystem = (*FileSystem)(nil)
