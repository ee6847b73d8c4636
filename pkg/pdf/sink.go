package pdf

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileSink stores finalized documents as files under a directory and
// returns the file path as the identifier.
type FileSink struct {
	Dir string // empty means the current directory
}

// Save writes data to Dir/name and returns the path
func (s FileSink) Save(name string, data []byte) (string, error) {
	path := name
	if s.Dir != "" {
		path = filepath.Join(s.Dir, name)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, "writing document")
	}
	return path, nil
}
