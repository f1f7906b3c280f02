// Package fileio loads and saves flat text files for the snep core,
// which itself only maps text to trees and back.  Saves are atomic:
// a half-written target file is never observable.
package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads the contents of a file.
func Load(fn string) (string, error) {
	d, err := os.ReadFile(fn)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// Save writes contents to fn by writing a temporary file in the
// target directory and renaming it over fn.  The mode of an existing
// target is preserved.  On failure the temporary file is removed;
// the target is left as it was.
func Save(fn, contents string) (err error) {
	dir, base := filepath.Split(fn)
	tmp, err := os.CreateTemp(dir, "."+base+".tmpsave-")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if fi, serr := os.Stat(fn); serr == nil {
		if err = os.Chmod(tmp.Name(), fi.Mode().Perm()); err != nil {
			return err
		}
	} else if !errors.Is(serr, fs.ErrNotExist) {
		return serr
	}
	if _, err = tmp.WriteString(contents); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fn)
}
