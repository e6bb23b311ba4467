package html

import "strings"

// relPath returns a /-separated path to target
// from the directory dir.
// Both must be relative, or both must be absolute.
//
//	relPath("guide", "_/css/main.css") // "../_/css/main.css"
func relPath(dir, target string) string {
	dir = strings.TrimSuffix(dir, "/")

	var from, to []string
	if dir != "" {
		from = strings.Split(dir, "/")
	}
	if target != "" {
		to = strings.Split(target, "/")
	}

	// Drop the shared leading directories.
	for len(from) > 0 && len(to) > 0 && from[0] == to[0] {
		from, to = from[1:], to[1:]
	}

	parts := make([]string, 0, len(from)+len(to))
	for range from {
		parts = append(parts, "..")
	}
	parts = append(parts, to...)
	return strings.Join(parts, "/")
}
