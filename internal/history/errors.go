package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInitialized reports that the schema was never created. Operations
// other than Init translate the engine's missing-table report into this
// error so the user is told to initialize instead of seeing a raw failure.
var ErrNotInitialized = errors.New("history database not initialized, run: histdb init")

// ErrNoSuchDirectory reports a scope directory that does not resolve.
var ErrNoSuchDirectory = errors.New("no such directory")

// ArgumentError reports a caller-supplied value that is out of range for the
// operation. It names the offending argument and is never used for storage
// failures.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

// storeTables are matched against missing-table reports to classify
// pre-init calls.
var storeTables = []string{"history", "checksum"}

// isMissingTable reports whether err is sqlite's missing-table failure for
// one of the store's own tables.
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, table := range storeTables {
		if strings.Contains(msg, "no such table: "+table) {
			return true
		}
	}

	return false
}

// classify translates a storage failure into the error the CLI reports:
// missing tables become ErrNotInitialized, everything else is logged at
// debug with the underlying message and wrapped with the operation name.
func (s *Store) classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if isMissingTable(err) {
		return ErrNotInitialized
	}

	s.log.Debugf("Storage error during %s: %v", op, err)

	return fmt.Errorf("cannot %s: %w", op, err)
}

// ResolveDir canonicalizes a user-supplied directory for scoped searches
// and inserts. The path must exist and be a directory.
func ResolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoSuchDirectory, dir)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoSuchDirectory, dir)
	}

	return filepath.Clean(abs), nil
}
