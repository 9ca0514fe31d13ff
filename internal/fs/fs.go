package fs

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem is the subset of filesystem operations the engine needs.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// File is a minimal interface for an append-only log file
type File interface {
	io.Writer
	io.Closer
	Name() string
}

// AppendFlags opens a file for appending, creating it if absent.
const AppendFlags = os.O_CREATE | os.O_APPEND | os.O_WRONLY

// DefaultPerm is used when the log file gets created.
const DefaultPerm os.FileMode = 0644

// RealFS is a real filesystem implementation using os package
type RealFS struct{}

func (f *RealFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	file, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return file, nil
}
func (f *RealFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (f *RealFS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }

// OpenAppend opens name for appending through the given FileSystem.
func OpenAppend(fsys FileSystem, name string) (File, error) {
	return fsys.OpenFile(name, AppendFlags, DefaultPerm)
}
