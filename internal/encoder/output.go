package encoder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/sheetgen-cli/internal/layout"
)

// EncodeError reports a sheet that could not be encoded or written.
// The destination is never left half written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("write sheet %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// OutputPath names the sheet for input: <stem>_sprite_<rows>x<cols>.<ext>,
// placed in dir, or beside input when dir is empty.
func OutputPath(input string, grid layout.Grid, ext, dir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, fmt.Sprintf("%s_sprite_%s.%s", stem, grid, ext))
}

// WriteFile writes data to path through a temp file in the same directory
// and a rename, replacing any existing file.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
