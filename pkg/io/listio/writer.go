package listio

import (
	"encoding/json"
	"fmt"
	"io"

	iox "github.com/uadtools/listclean/pkg/io/ioutils"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Write serializes d with two-space indentation and a trailing newline.
// HTML-unsafe and non-ASCII characters are written literally.
func Write(w io.Writer, d *u.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteFile writes a document to path ("-" for stdout, .gz transparent).
// No partial-write guarantee: a failure can leave a truncated file.
func WriteFile(path string, d *u.Document) error {
	wc, err := iox.CreateWriter(path)
	if err != nil {
		return err
	}
	if err := Write(wc, d); err != nil {
		_ = wc.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
