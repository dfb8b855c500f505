package csvio

import (
	"encoding/csv"

	iox "github.com/uadtools/listclean/pkg/io/ioutils"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

type WriterOptions struct {
	Delimiter rune // default ','
	NoHeader  bool
}

// WriteAll writes the flat projection of recs as CSV with a header row.
func WriteAll(path string, recs []u.FlatRecord, opt WriterOptions) error {
	wc, err := iox.CreateWriter(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(wc)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}
	if !opt.NoHeader {
		if err := w.Write([]string{"package", "list", "removal", "description"}); err != nil {
			_ = wc.Close()
			return err
		}
	}
	for _, r := range recs {
		if err := w.Write([]string{r.Package, r.List, r.Removal, r.Description}); err != nil {
			_ = wc.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
