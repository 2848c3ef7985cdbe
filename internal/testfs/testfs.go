// Package testfs builds throwaway directory trees for pipeline tests.
//
// Specs are declarative: regular files with human-readable sizes, optional
// extra directories, optional symlinks. Everything lands under a fresh
// t.TempDir() and is cleaned up by the testing framework.
package testfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dustin/go-humanize"
)

// File describes one regular file to create. Size accepts humanize byte
// strings ("10", "1KiB", "2.5MiB").
type File struct {
	Path string
	Size string
}

// Tree describes a directory tree to sow.
type Tree struct {
	Files    []File
	Dirs     []string          // extra (possibly empty) directories
	Symlinks map[string]string // link path → target, both relative to root
}

// Sow creates the tree under a fresh temp dir and returns its root.
func Sow(t *testing.T, spec Tree) string {
	t.Helper()
	root := t.TempDir()

	for _, d := range spec.Dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	for _, f := range spec.Files {
		size, err := humanize.ParseBytes(f.Size)
		if err != nil {
			t.Fatalf("bad size %q for %s: %v", f.Size, f.Path, err)
		}
		path := filepath.Join(root, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", f.Path, err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", f.Path, err)
		}
	}
	for link, target := range spec.Symlinks {
		if err := os.Symlink(filepath.Join(root, target), filepath.Join(root, link)); err != nil {
			t.Fatalf("symlink %s: %v", link, err)
		}
	}
	return root
}

// Chdir changes the working directory for the duration of the test and
// restores it on cleanup. Backport of t.Chdir (Go 1.24) for older toolchains.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir back to %s: %v", prev, err)
		}
	})
}
