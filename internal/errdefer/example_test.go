package errdefer_test

import (
	"io"
	"os"
	"path/filepath"

	"go.abhg.dev/hljspage/internal/errdefer"
)

func writePage(name, body string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, f)
	// NOTE: err must be a named return.

	_, err = io.WriteString(f, body)
	return err
}

// Closing a file that was written to can fail,
// so the error from Close must not be dropped.
func ExampleClose() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := writePage(filepath.Join(dir, "index.html"), "<p>hello</p>"); err != nil {
		panic(err)
	}
}
