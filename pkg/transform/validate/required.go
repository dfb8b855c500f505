package validate

import (
	"context"
	"fmt"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Required fails when a record lacks one of the named fields.
type Required struct {
	Fields []string
}

func (t *Required) Name() string { return "validate_required" }

func (t *Required) Apply(ctx context.Context, d *u.Document) (*u.Document, error) {
	var bad int
	err := d.MapRecords(func(id string, rec *u.Record) error {
		for _, f := range t.Fields {
			if !rec.Has(f) {
				bad++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if bad > 0 {
		return d, fmt.Errorf("%d missing required fields", bad)
	}
	return d, nil
}
