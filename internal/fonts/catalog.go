// Package fonts lists and loads the TrueType fonts available to the composer.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/youruser/postgen/internal/util"
)

var ErrFontNotFound = errors.New("font not found")

var extensions = map[string]bool{".ttf": true}

// List returns the font file names in dir, creating dir when it is missing.
// The directory is scanned on every call.
func List(dir string) ([]string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating font dir %s: %w", dir, err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading font dir %s: %w", dir, err)
	}
	out := []string{}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		if extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Resolve maps a font name from the catalog to its path.
func Resolve(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	names, err := List(dir)
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if n == name {
			return filepath.Join(dir, n), nil
		}
	}
	return "", fmt.Errorf("%w: %q in %s", ErrFontNotFound, name, dir)
}
