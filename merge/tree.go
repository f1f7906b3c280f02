package merge

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SaveTree writes a filename -> content mapping under dir, creating
// intermediate directories.  Filenames must be local relative paths.
func SaveTree(dir string, files map[string]string) error {
	for fn, contents := range files {
		if !filepath.IsLocal(fn) {
			return fmt.Errorf("non-local filename: %q", fn)
		}
		path := filepath.Join(dir, filepath.FromSlash(fn))
		if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(contents), 0o666); err != nil {
			return err
		}
	}
	return nil
}

// LoadTree reads every file under dir into a filename -> content
// mapping keyed by slash-separated relative paths.  Dot-directories
// (notably .git) are skipped.
func LoadTree(dir string) (map[string]string, error) {
	files := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(contents)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
