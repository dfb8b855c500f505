package uadlist

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Document is a full package list: package id -> record. Entry order is
// the order of the source file and is preserved through a transform run.
type Document struct {
	Object
}

// Record is one application's field set within a Document.
type Record struct {
	Object
}

// StringField returns the field's value when it is present and a JSON
// string. Any other shape (number, array, object, null) reports false.
func (r *Record) StringField(name string) (string, bool) {
	raw, ok := r.Get(name)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func (r *Record) SetStringField(name, v string) {
	b, _ := json.Marshal(v)
	r.Set(name, b)
}

// Record decodes the entry for id. The entry must be a JSON object.
func (d *Document) Record(id string) (*Record, error) {
	raw, ok := d.Get(id)
	if !ok {
		return nil, fmt.Errorf("no entry %q", id)
	}
	var rec Record
	if err := rec.UnmarshalJSON(raw); err != nil {
		if errors.Is(err, ErrNotObject) {
			return nil, fmt.Errorf("entry %q: %w", id, ErrNotObject)
		}
		return nil, fmt.Errorf("entry %q: %w", id, err)
	}
	return &rec, nil
}

// SetRecord re-encodes rec into the entry for id.
func (d *Document) SetRecord(id string, rec *Record) error {
	b, err := rec.MarshalJSON()
	if err != nil {
		return fmt.Errorf("entry %q: %w", id, err)
	}
	d.Set(id, b)
	return nil
}

// MapRecords decodes every entry in order, applies fn, and stores the
// result back. An entry whose value is not an object fails the whole
// pass; the list format gives such entries no meaning.
func (d *Document) MapRecords(fn func(id string, rec *Record) error) error {
	for _, id := range d.keys {
		var rec Record
		if err := rec.UnmarshalJSON(d.values[id]); err != nil {
			if errors.Is(err, ErrNotObject) {
				return fmt.Errorf("entry %q: %w", id, ErrNotObject)
			}
			return fmt.Errorf("entry %q: %w", id, err)
		}
		if err := fn(id, &rec); err != nil {
			return fmt.Errorf("entry %q: %w", id, err)
		}
		b, err := rec.MarshalJSON()
		if err != nil {
			return fmt.Errorf("entry %q: %w", id, err)
		}
		d.values[id] = b
	}
	return nil
}
