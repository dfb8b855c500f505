package uadlist

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotObject is returned when a JSON value expected to be an object
// (the document itself, or one of its entries) is something else.
var ErrNotObject = errors.New("not a JSON object")

// Object is a JSON object that remembers key insertion order. Values are
// kept as raw JSON so fields we do not touch round-trip byte-for-byte in
// meaning (nested structure, numbers, unicode).
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func (o *Object) Get(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set stores a raw value under key. A new key is appended at the end; an
// existing key keeps its position.
func (o *Object) Set(key string, v json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key and reports whether it was present. Remaining keys
// keep their relative order.
func (o *Object) Delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *Object) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	return o.decode(dec)
}

// decode consumes one object from dec. Duplicate keys keep the first
// position and the last value, matching what an ordinary map decode does.
func (o *Object) decode(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotObject
	}
	o.keys = o.keys[:0]
	o.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if _, dup := o.values[key]; !dup {
			o.keys = append(o.keys, key)
		}
		o.values[key] = raw
	}
	_, err = dec.Token() // closing '}'
	return err
}

// MarshalJSON emits a compact object with keys in insertion order.
// Callers wanting indentation re-encode through json.Encoder/Indent,
// which reformats the raw values as well.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		v := o.values[k]
		if len(v) == 0 {
			buf.WriteString("null")
			continue
		}
		if err := json.Compact(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
