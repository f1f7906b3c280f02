package fileio

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.sh")
	if err := Save(fn, "hello\n"); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	got, err := Load(fn)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if got != "hello\n" {
		t.Errorf("Load() = %q", got)
	}
}

func TestSaveOverwrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.sh")
	if err := Save(fn, "first\n"); err != nil {
		t.Fatal(err)
	}
	if err := Save(fn, "second\n"); err != nil {
		t.Fatal(err)
	}
	got, err := Load(fn)
	if err != nil {
		t.Fatal(err)
	}
	if got != "second\n" {
		t.Errorf("Load() = %q", got)
	}
}

func TestSavePreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix file modes")
	}
	fn := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(fn, []byte("old\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(fn, "new\n"); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(fn)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", fi.Mode().Perm())
	}
}

func TestSaveLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "out.sh")
	if err := Save(fn, "x\n"); err != nil {
		t.Fatal(err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 || ents[0].Name() != "out.sh" {
		names := make([]string, len(ents))
		for i, e := range ents {
			names[i] = e.Name()
		}
		t.Errorf("directory holds %v, want only out.sh", names)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Load() on a missing file succeeded")
	}
}
