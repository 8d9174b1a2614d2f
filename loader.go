package marina

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadLines reads all the lines of the registry file.
//
// A missing file is not an error: the registry simply starts empty.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open registry file %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	lines, err := DecodeLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read registry file %q: %w", ErrIO, path, err)
	}
	return lines, nil
}

// OpenRegistry loads the registry file at path.
//
// Records that could not be loaded are reported in the returned error, but the
// registry is still returned with every boat that could be loaded. Only an
// ErrIO means the registry is unusable.
func OpenRegistry(path string, opts Options) (*Registry, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	r := NewRegistry(opts)
	return r, r.Load(lines)
}

// WriteRegistry replaces the registry file at path with one record per boat.
//
// The records are written to a temporary file in the same directory, renamed
// over path once complete: on error the previous file is left untouched.
func WriteRegistry(path string, r *Registry) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return EncodeRegistry(w, r)
	})
}

func writeFileAtomic(path string, write func(io.Writer) error) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: error opening registry file %q for writing: %w", ErrIO, path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: error writing registry file %q: %w", ErrIO, path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: error writing registry file %q: %w", ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: error closing registry file %q: %w", ErrIO, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: error replacing registry file %q: %w", ErrIO, path, err)
	}
	return nil
}
