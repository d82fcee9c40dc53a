package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FS is the subset of file system access the option resolver needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// New wraps an afero file system.
func New(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS returns an FS backed by the operating system.
func NewOS() FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory FS together with the afero handle
// used to populate it.
func NewMemory() (FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return New(mem), mem
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}
