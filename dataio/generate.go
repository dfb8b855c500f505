// Package dataio generates synthetic legacy-format package lists for
// benchmarks and tests. Generated documents look like the pre-migration
// format: legacy removal tiers and optional neededBy/labels/dependencies
// fields.
package dataio

import (
	"encoding/json"
	"fmt"
	"math/rand"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

var legacyRemovals = []string{"Recommended", "Advanced", "Expert", "Unsafe", "Unlisted"}

var descriptions = []string{
	"Carrier bloatware, safe to remove.",
	"Sync service for the vendor cloud.",
	"Précharge les données constructeur.", // unicode on purpose
	"Telemetry & usage reporting <background>.",
	"システムアップデートサービス.",
}

type Generator struct {
	// LegacyProb is the probability that a record carries each of the
	// legacy fields. Zero means an already-migrated document.
	LegacyProb float64
	rnd        *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{LegacyProb: 0.5, rnd: rand.New(rand.NewSource(seed))}
}

// Document generates a legacy-format document with n records.
func (g *Generator) Document(n int) *u.Document {
	var d u.Document
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("com.vendor%d.app%d", g.rnd.Intn(50), i)
		d.Set(id, g.record())
	}
	return &d
}

func (g *Generator) record() json.RawMessage {
	var rec u.Record
	rec.SetStringField("list", u.KnownLists[g.rnd.Intn(len(u.KnownLists))])
	rec.SetStringField("description", descriptions[g.rnd.Intn(len(descriptions))])
	for _, f := range u.LegacyFields {
		if g.rnd.Float64() < g.LegacyProb {
			rec.Set(f, marshal(g.stringList()))
		}
	}
	rec.SetStringField("removal", legacyRemovals[g.rnd.Intn(len(legacyRemovals))])
	b, _ := rec.MarshalJSON()
	return b
}

func (g *Generator) stringList() []string {
	n := g.rnd.Intn(3)
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("com.other.app%d", g.rnd.Intn(100))
	}
	return out
}

func marshal(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
