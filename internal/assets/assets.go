// Package assets enumerates the image files available to cards.
package assets

import (
	"os"
	"sort"
)

// ListImages returns the lexicographically sorted names of the regular
// files directly inside dir. A missing directory yields an empty list;
// there is no recursion and no filtering by extension.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
