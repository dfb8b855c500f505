package strip

import (
	"context"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Fields deletes the named fields from every record. Missing fields are
// not an error.
type Fields struct {
	Fields []string
}

func (t *Fields) Name() string { return "strip_fields" }

func (t *Fields) Apply(ctx context.Context, d *u.Document) (*u.Document, error) {
	err := d.MapRecords(func(id string, rec *u.Record) error {
		for _, f := range t.Fields {
			rec.Delete(f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
