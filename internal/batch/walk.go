package batch

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// MaxDepth bounds recursive walks.
const MaxDepth = 1000

// Walk lazily yields the regular files below root, descending at most
// maxDepth levels (1 yields only direct children). A symlinked root is
// followed; symlinks below it, directories and special files are skipped, and
// entries that cannot be read are dropped. Yielded paths keep root as their
// prefix.
func Walk(root string, maxDepth int) iter.Seq[string] {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return func(yield func(string) bool) {
		walkRoot := root
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			walkRoot = resolved
		}
		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != walkRoot && depth(walkRoot, path) >= maxDepth {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if depth(walkRoot, path) > maxDepth {
				return nil
			}
			if walkRoot != root {
				rel, err := filepath.Rel(walkRoot, path)
				if err != nil {
					return nil
				}
				path = filepath.Join(root, rel)
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	n := 1
	for _, r := range rel {
		if r == filepath.Separator {
			n++
		}
	}
	return n
}
