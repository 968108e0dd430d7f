package fs_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.trai.ch/noxy/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"), "git config")
	writeFile(t, filepath.Join(root, ".nox", "tests-3.8", "tmp", "marker"), "digest")
	writeFile(t, filepath.Join(root, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(root, "src", "regrid.py"), "import numpy")
	writeFile(t, filepath.Join(root, "README.md"), "readme")
	writeFile(t, filepath.Join(root, "notes.tmp"), "scratch")

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"ignored", "*.tmp"}) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	want := []string{"README.md", "src/regrid.py"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WalkFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "")
	writeFile(t, filepath.Join(root, "b.py"), "")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected iteration to stop after one file, got %d", count)
	}
}
