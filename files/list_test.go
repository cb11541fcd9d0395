package files_test

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"woods/files"
)

// seedTree builds {a.txt, b.jpg, sub/c.txt} under the manager root.
func seedTree(t *testing.T, m *files.Manager) {
	t.Helper()
	if err := m.CreateDir("tree", files.WithSubdirs("sub")); err != nil {
		t.Fatalf("CreateDir returned error: %v", err)
	}
	for _, name := range []string{"tree/a.txt", "tree/b.jpg", "tree/sub/c.txt"} {
		if err := m.CreateFile(name); err != nil {
			t.Fatalf("CreateFile %s returned error: %v", name, err)
		}
	}
}

func TestFilesByExtensionFiltersTopLevelOnly(t *testing.T) {
	m, _ := newManager(t)
	seedTree(t, m)

	got, err := m.FilesByExtension("tree", ".txt")
	if err != nil {
		t.Fatalf("FilesByExtension returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a.txt"}, got); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}
}

func TestFilesByExtensionToleratesMissingDot(t *testing.T) {
	m, _ := newManager(t)
	seedTree(t, m)

	got, err := m.FilesByExtension("tree", "jpg")
	if err != nil {
		t.Fatalf("FilesByExtension returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"b.jpg"}, got); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}
}

func TestFilesByExtensionEmptyWhenNoMatch(t *testing.T) {
	m, _ := newManager(t)
	seedTree(t, m)

	got, err := m.FilesByExtension("tree", ".mkv")
	if err != nil {
		t.Fatalf("FilesByExtension returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFilesRecursiveCoversSubdirectories(t *testing.T) {
	m, _ := newManager(t)
	seedTree(t, m)

	got, err := m.FilesRecursive("tree", true)
	if err != nil {
		t.Fatalf("FilesRecursive returned error: %v", err)
	}
	sort.Strings(got)
	if diff := cmp.Diff([]string{"a.txt", "b.jpg", "c.txt"}, got); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}

	flat, err := m.FilesRecursive("tree", false)
	if err != nil {
		t.Fatalf("FilesRecursive returned error: %v", err)
	}
	sort.Strings(flat)
	if diff := cmp.Diff([]string{"a.txt", "b.jpg"}, flat); diff != "" {
		t.Fatalf("unexpected flat listing (-want +got):\n%s", diff)
	}
}

func TestFilePathsWithDirReturnsFullPaths(t *testing.T) {
	m, root := newManager(t)
	seedTree(t, m)

	got, err := m.FilePathsWithDir("tree", true)
	if err != nil {
		t.Fatalf("FilePathsWithDir returned error: %v", err)
	}
	sort.Strings(got)
	want := []string{
		filepath.Join(root, "tree", "a.txt"),
		filepath.Join(root, "tree", "b.jpg"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}
}

func TestListMissingDirectory(t *testing.T) {
	m, _ := newManager(t)

	_, err := m.List("absent", files.ListOptions{})
	var notFound *files.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListRejectsFilePath(t *testing.T) {
	m, _ := newManager(t)
	if err := m.CreateFile("plain.txt"); err != nil {
		t.Fatalf("CreateFile returned error: %v", err)
	}

	_, err := m.List("plain.txt", files.ListOptions{})
	var fsErr *files.FileSystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected FileSystemError, got %v", err)
	}
}

func TestWalkVisitsWholeTreeAndRestarts(t *testing.T) {
	m, root := newManager(t)
	seedTree(t, m)

	collect := func() []string {
		var paths []string
		for path, err := range m.Walk("tree") {
			if err != nil {
				t.Fatalf("walk error: %v", err)
			}
			paths = append(paths, path)
		}
		sort.Strings(paths)
		return paths
	}

	want := []string{
		filepath.Join(root, "tree", "a.txt"),
		filepath.Join(root, "tree", "b.jpg"),
		filepath.Join(root, "tree", "sub", "c.txt"),
	}
	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Fatalf("unexpected walk (-want +got):\n%s", diff)
	}
	// Ranging again performs a fresh traversal.
	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Fatalf("unexpected second walk (-want +got):\n%s", diff)
	}
}

func TestWalkStopsWhenConsumerBreaks(t *testing.T) {
	m, _ := newManager(t)
	seedTree(t, m)

	count := 0
	for _, err := range m.Walk("tree") {
		if err != nil {
			t.Fatalf("walk error: %v", err)
		}
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected a single yielded path, got %d", count)
	}
}

func TestWalkReportsMissingRoot(t *testing.T) {
	m, _ := newManager(t)

	var walkErr error
	for _, err := range m.Walk("absent") {
		walkErr = err
	}
	var notFound *files.NotFoundError
	if !errors.As(walkErr, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", walkErr)
	}
}
