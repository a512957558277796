package repo

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// readJSON decodes the file at path into dest. A missing file is not an
// error: persisted state simply does not exist yet and callers fall back to
// empty state. The returned bool reports whether the file existed.
func readJSON(path string, dest interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return true, errors.Wrapf(err, "failed to decode %s", path)
	}
	return true, nil
}

// writeJSON writes src to path via a temp file rename so a crash mid-write
// never truncates previously persisted state.
func writeJSON(path string, src interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
