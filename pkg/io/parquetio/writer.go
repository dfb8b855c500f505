package parquetio

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

type row struct {
	Package     string `parquet:"name=package, type=UTF8, encoding=PLAIN_DICTIONARY"`
	List        string `parquet:"name=list, type=UTF8, encoding=PLAIN_DICTIONARY"`
	Removal     string `parquet:"name=removal, type=UTF8, encoding=PLAIN_DICTIONARY"`
	Description string `parquet:"name=description, type=UTF8"`
}

// WriteAll writes the flat projection of recs as a snappy-compressed
// Parquet file.
func WriteAll(path string, recs []u.FlatRecord) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(row), 2)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, r := range recs {
		rw := row{Package: r.Package, List: r.List, Removal: r.Removal, Description: r.Description}
		if err := pw.Write(rw); err != nil {
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}
