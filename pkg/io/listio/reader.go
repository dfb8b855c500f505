package listio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	iox "github.com/uadtools/listclean/pkg/io/ioutils"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Read parses a package-list document, keeping entry order. The top
// level must be a JSON object.
func Read(r io.Reader) (*u.Document, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	var d u.Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, u.ErrNotObject) {
			return nil, fmt.Errorf("document: %w", u.ErrNotObject)
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if dec.More() {
		return nil, errors.New("parse: trailing data after document")
	}
	return &d, nil
}

// ReadFile reads a document from path ("-" for stdin, .gz transparent).
func ReadFile(path string) (*u.Document, error) {
	rc, err := iox.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	d, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
