package validate

import (
	"context"
	"fmt"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

// InSet fails when any record's string value for Field falls outside the
// allowed set. Absent and non-string values are skipped; Required covers
// those.
type InSet struct {
	Field  string
	Values map[string]struct{}
}

func NewInSet(field string, vals []string) *InSet {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return &InSet{Field: field, Values: m}
}

func (t *InSet) Name() string { return "validate_in" }

func (t *InSet) Apply(ctx context.Context, d *u.Document) (*u.Document, error) {
	var bad int
	err := d.MapRecords(func(id string, rec *u.Record) error {
		v, ok := rec.StringField(t.Field)
		if !ok {
			return nil
		}
		if _, ok := t.Values[v]; !ok {
			bad++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if bad > 0 {
		return d, fmt.Errorf("field %s has %d values outside allowed set", t.Field, bad)
	}
	return d, nil
}
