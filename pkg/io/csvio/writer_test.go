package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

func TestWriteAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.csv")
	recs := []u.FlatRecord{
		{Package: "com.a", List: "oem", Removal: "Safe", Description: "a, quoted"},
		{Package: "com.b", List: "aosp", Removal: "Disruptive"},
	}
	if err := WriteAll(path, recs, WriterOptions{}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "package" {
		t.Fatalf("missing header, got %v", rows[0])
	}
	if rows[1][3] != "a, quoted" {
		t.Fatalf("quoting broken: %v", rows[1])
	}
}

func TestWriteAllNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.csv")
	if err := WriteAll(path, []u.FlatRecord{{Package: "com.a"}}, WriterOptions{NoHeader: true, Delimiter: ';'}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "com.a;;;\n" {
		t.Fatalf("got %q", b)
	}
}
