package slipstore

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store keeps uploaded payment slips on local disk under a flat directory.
// Object names are server-generated, so client filenames never touch the
// filesystem.
type Store struct {
	Dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

var ErrUnsupportedType = errors.New("unsupported slip file type")

// Save writes the uploaded file under a fresh uuid object name and returns
// that name. The original filename is only consulted for its extension.
func Save(s *Store, file multipart.File, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Open returns the stored slip for streaming to a client. The object name is
// validated to stay inside the store directory.
func (s *Store) Open(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.Dir, name))
}
