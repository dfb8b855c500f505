package jsonlio

import (
	"encoding/json"

	iox "github.com/uadtools/listclean/pkg/io/ioutils"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

// WriteAll writes one JSON object per line: the record's fields in their
// original order, with the package id injected as the first field. Handy
// for jq-style processing of a list.
func WriteAll(path string, d *u.Document) error {
	wc, err := iox.CreateWriter(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(wc)
	enc.SetEscapeHTML(false)
	for _, id := range d.Keys() {
		rec, err := d.Record(id)
		if err != nil {
			_ = wc.Close()
			return err
		}
		var line u.Object
		line.Set("package", mustMarshal(id))
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			line.Set(k, v)
		}
		if err := enc.Encode(&line); err != nil {
			_ = wc.Close()
			return err
		}
	}
	return wc.Close()
}

func mustMarshal(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
