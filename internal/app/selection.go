package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
)

// File is a user-chosen file. Content is read on demand at submit time.
type File struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// FileFromPath stats path and returns a File that opens it lazily.
func FileFromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, errors.NewFileError("stat", path, err)
	}
	if info.IsDir() {
		return File{}, errors.NewFileError("stat", path, errors.ErrIsDirectory)
	}
	return File{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// FilesFromPaths converts paths in order, stopping at the first error.
func FilesFromPaths(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		f, err := FileFromPath(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// MemFile returns a File backed by data.
func MemFile(name string, data []byte) File {
	return File{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func (f File) upload() api.Upload {
	return api.Upload{Name: f.Name, Open: f.Open}
}

func uploads(files []File) []api.Upload {
	out := make([]api.Upload, len(files))
	for i, f := range files {
		out[i] = f.upload()
	}
	return out
}

// Selection is the ordered file set of one workflow. It is only ever
// replaced wholesale.
type Selection struct {
	mu    sync.RWMutex
	files []File
}

// Set replaces the selection with a copy of files.
func (s *Selection) Set(files []File) {
	cp := make([]File, len(files))
	copy(cp, files)

	s.mu.Lock()
	s.files = cp
	s.mu.Unlock()
}

// Files returns a snapshot of the selection.
func (s *Selection) Files() []File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]File, len(s.files))
	copy(cp, s.files)
	return cp
}

// Len returns the number of selected files.
func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// TotalSize returns the sum of all selected file sizes.
func (s *Selection) TotalSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalSize(s.files)
}

func totalSize(files []File) int64 {
	var n int64
	for _, f := range files {
		n += f.Size
	}
	return n
}
