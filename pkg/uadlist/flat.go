package uadlist

// FlatRecord is the tabular projection of a record used by the flat
// exporters (csv, jsonl, parquet). Fields missing from a record stay
// empty.
type FlatRecord struct {
	Package     string `json:"package"`
	List        string `json:"list"`
	Removal     string `json:"removal"`
	Description string `json:"description"`
}

// Flatten projects every entry, in document order.
func (d *Document) Flatten() ([]FlatRecord, error) {
	out := make([]FlatRecord, 0, d.Len())
	for _, id := range d.keys {
		rec, err := d.Record(id)
		if err != nil {
			return nil, err
		}
		fr := FlatRecord{Package: id}
		fr.List, _ = rec.StringField("list")
		fr.Removal, _ = rec.StringField("removal")
		fr.Description, _ = rec.StringField("description")
		out = append(out, fr)
	}
	return out, nil
}
