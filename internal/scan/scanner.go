package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindSubtitles resolves CLI arguments (files and directories) into a
// sorted, de-duplicated list of .srt files. Directories are walked,
// recursively when asked; unreadable entries are skipped. A path that
// does not exist is reported in missing rather than failing the batch.
func FindSubtitles(paths []string, recursive bool) (files, missing []string, err error) {
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		path = expandHome(path)

		info, statErr := os.Stat(path)
		if statErr != nil {
			missing = append(missing, path)
			continue
		}

		if !info.IsDir() {
			if isSubtitle(path) {
				add(path)
			} else {
				missing = append(missing, path)
			}
			continue
		}

		walkErr := filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if fi.IsDir() {
				if p != path && !recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if isSubtitle(p) {
				add(p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, nil, fmt.Errorf("walk %s: %w", path, walkErr)
		}
	}

	sort.Strings(files)
	return files, missing, nil
}

func isSubtitle(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".srt")
}

func expandHome(path string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
