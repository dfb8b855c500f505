package standardize

import (
	"context"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

// MapField remaps a string field's value through a fixed mapping. Values
// outside the mapping, non-string values, and absent fields are left
// alone; the field is never created.
type MapField struct {
	Field string
	Map   map[string]string
}

func (t *MapField) Name() string { return "map_field" }

func (t *MapField) Apply(ctx context.Context, d *u.Document) (*u.Document, error) {
	err := d.MapRecords(func(id string, rec *u.Record) error {
		v, ok := rec.StringField(t.Field)
		if !ok {
			return nil
		}
		if nv, ok := t.Map[v]; ok {
			rec.SetStringField(t.Field, nv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
