package mustgather

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxDescentDepth bounds the wrapper-directory descent. Real archives
// nest two or three levels deep; anything past this is not an archive.
const maxDescentDepth = 32

// FindRoot locates the archive root at or below start and returns it as
// an absolute, symlink-resolved path.
//
// A directory is the root when it directly contains a version file, or
// both a namespaces/ and a cluster-scoped-resources/ directory. Starting
// from start, each directory that is not a root is unwrapped when it
// contains exactly one subdirectory; zero or several subdirectories make
// the root undeterminable and fail with ErrRootNotFound. A start path
// that does not exist, is not a directory, or cannot be listed fails
// with ErrInputUnreadable.
//
// FindRoot is idempotent: applied to its own result it returns the same
// path.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInputUnreadable, start, err)
	}
	dir, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInputUnreadable, start, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInputUnreadable, start, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInputUnreadable, start)
	}

	visited := make(map[string]bool)
	for depth := 0; ; depth++ {
		if depth > maxDescentDepth {
			return "", fmt.Errorf("%w: descent exceeded %d levels below %s", ErrRootNotFound, maxDescentDepth, start)
		}
		if visited[dir] {
			return "", fmt.Errorf("%w: directory cycle at %s", ErrRootNotFound, dir)
		}
		visited[dir] = true

		if isArchiveRoot(dir) {
			return dir, nil
		}

		subdirs, err := listSubdirs(dir)
		if err != nil {
			if depth == 0 {
				return "", fmt.Errorf("%w: cannot list %s: %v", ErrInputUnreadable, start, err)
			}
			return "", fmt.Errorf("%w: cannot list %s: %v", ErrRootNotFound, dir, err)
		}
		if len(subdirs) != 1 {
			return "", fmt.Errorf("%w: %s contains %d subdirectories", ErrRootNotFound, dir, len(subdirs))
		}

		next, err := filepath.EvalSymlinks(subdirs[0])
		if err != nil {
			return "", fmt.Errorf("%w: cannot resolve %s: %v", ErrRootNotFound, subdirs[0], err)
		}
		dir = next
	}
}

// isArchiveRoot reports whether dir satisfies the archive root layout.
func isArchiveRoot(dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, "version")); err == nil && !info.IsDir() {
		return true
	}

	ns, err := os.Stat(filepath.Join(dir, "namespaces"))
	if err != nil || !ns.IsDir() {
		return false
	}
	csr, err := os.Stat(filepath.Join(dir, "cluster-scoped-resources"))
	return err == nil && csr.IsDir()
}

// listSubdirs returns the immediate subdirectories of dir. Entries are
// stat'ed, so symlinks to directories count; entries that cannot be
// stat'ed are skipped.
func listSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			subdirs = append(subdirs, path)
		}
	}
	return subdirs, nil
}
