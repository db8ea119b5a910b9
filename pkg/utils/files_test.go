package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestGetPathInfo(t *testing.T) {
	full, parent, err := GetPathInfo("a/b/../c.asm")
	if err != nil {
		t.Fatalf("GetPathInfo failed: %v", err)
	}
	if !filepath.IsAbs(full) || filepath.Base(full) != "c.asm" || filepath.Base(parent) != "a" {
		t.Errorf("GetPathInfo = %q, %q", full, parent)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.hack")

	err := WriteFileAtomic(path, func(f *os.File) error {
		_, err := f.WriteString("0000000000000001\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "0000000000000001\n" {
		t.Fatalf("ReadFile = %q, %v", data, err)
	}

	// A failing writer leaves the previous contents and no temp files.
	boom := errors.New("boom")
	err = WriteFileAtomic(path, func(f *os.File) error {
		f.WriteString("partial")
		return boom
	})
	if errors.Cause(err) != boom {
		t.Errorf("WriteFileAtomic error = %v; want cause %v", err, boom)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "0000000000000001\n" {
		t.Errorf("contents after failed write = %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries; want 1", len(entries))
	}
}

func TestWriteFileAtomicRelativePath(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	err = WriteFileAtomic("rel.hack", func(f *os.File) error {
		if got, _ := filepath.EvalSymlinks(filepath.Dir(f.Name())); got != dir {
			t.Errorf("temp file %q not created in %q", f.Name(), dir)
		}
		_, err := f.WriteString("0000000000000000\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if data, err := os.ReadFile(filepath.Join(dir, "rel.hack")); err != nil || string(data) != "0000000000000000\n" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
}
