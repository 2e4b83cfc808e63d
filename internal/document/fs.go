package document

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"
	"time"
)

// FileSystem is the subset of file operations documents need.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)

	// Rename renames (moves) a file.
	Rename(oldPath, newPath string) error

	// Remove removes a file.
	Remove(path string) error
}

// OSFS implements FileSystem using the operating system's file system.
type OSFS struct{}

// Ensure OSFS implements FileSystem.
var _ FileSystem = OSFS{}

// ReadFile reads the entire file content.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Stat returns file information.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Rename renames (moves) a file.
func (OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove removes a file.
func (OSFS) Remove(path string) error {
	return os.Remove(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// MemFS implements FileSystem in memory. It is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]bool

	// FailWrites makes every WriteFile fail with this error when set.
	FailWrites error
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// Ensure MemFS implements FileSystem.
var _ FileSystem = (*MemFS)(nil)

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true},
	}
}

// AddFile creates or replaces a file with the given content.
func (m *MemFS) AddFile(filePath string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[m.cleanPath(filePath)] = &memFile{
		content: append([]byte(nil), content...),
		mode:    0o644,
		modTime: time.Now(),
	}
}

// AddDir creates a directory entry.
func (m *MemFS) AddDir(dirPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[m.cleanPath(dirPath)] = true
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: ErrIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	return append([]byte(nil), f.content...), nil
}

// WriteFile writes data to a file, creating it if necessary.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if m.FailWrites != nil {
		return &fs.PathError{Op: "write", Path: filePath, Err: m.FailWrites}
	}
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: ErrIsDir}
	}

	m.files[filePath] = &memFile{
		content: append([]byte(nil), data...),
		mode:    perm,
		modTime: time.Now(),
	}
	return nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return memInfo{name: path.Base(filePath), size: int64(len(f.content)), mode: f.mode, modTime: f.modTime}, nil
	}
	if m.dirs[filePath] {
		return memInfo{name: path.Base(filePath), mode: fs.ModeDir | 0o755, modTime: time.Now()}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// Rename renames (moves) a file.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldPath, newPath = m.cleanPath(oldPath), m.cleanPath(newPath)
	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// Remove removes a file.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if _, ok := m.files[filePath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, filePath)
	return nil
}

// Files returns all file paths, sorted.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemFS) cleanPath(p string) string {
	p = path.Clean("/" + p)
	return p
}

type memInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) Mode() fs.FileMode  { return i.mode }
func (i memInfo) ModTime() time.Time { return i.modTime }
func (i memInfo) IsDir() bool        { return i.mode.IsDir() }
func (i memInfo) Sys() any           { return nil }
