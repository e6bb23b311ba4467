package hljs

import "go.abhg.dev/hljspage/internal/must"

// indexNames builds a name-to-position index for a catalog table.
// Names in a catalog must be unique.
func indexNames(n int, name func(int) string) map[string]int {
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		nm := name(i)
		_, dup := idx[nm]
		must.Truef(!dup, "duplicate catalog entry %q", nm)
		idx[nm] = i
	}
	return idx
}
