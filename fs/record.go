package fs

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/autohext"
)

// ReadRecord reads an example HTML record from disk.
// Returns ENOTFOUND if the file does not exist.
func ReadRecord(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", autohext.Errorf(autohext.ENOTFOUND, "record %q not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read record %q: %w", path, err)
	}
	return string(b), nil
}
