// Package migrate wires the canonical legacy-to-current list migration:
// drop neededBy/labels/dependencies from every record and rename the two
// removal tiers that changed name (Recommended -> Safe, Expert ->
// Disruptive). Everything else passes through untouched.
package migrate

import (
	"context"

	"github.com/uadtools/listclean/pkg/io/listio"
	"github.com/uadtools/listclean/pkg/transform/standardize"
	"github.com/uadtools/listclean/pkg/transform/strip"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Default file names, from the original migration tooling.
const (
	DefaultInput  = "uad_lists2.json"
	DefaultOutput = "uad_listNew.json"
)

// Pipeline returns the migration pipeline. Running it twice is a no-op.
func Pipeline() *u.Pipeline {
	return u.NewPipeline().
		Add(&strip.Fields{Fields: u.LegacyFields}).
		Add(&standardize.MapField{Field: "removal", Map: u.RemovalRenames})
}

// Document migrates d in place and returns it.
func Document(ctx context.Context, d *u.Document) (*u.Document, error) {
	return Pipeline().Run(ctx, d)
}

// File reads inPath, migrates, and writes outPath. The whole document is
// held in memory; entry order is preserved.
func File(ctx context.Context, inPath, outPath string) error {
	d, err := listio.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := Document(ctx, d)
	if err != nil {
		return err
	}
	return listio.WriteFile(outPath, out)
}
