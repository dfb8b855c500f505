package profile

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Summary describes the composition of a package list: how many records
// it has, how the removal tiers and lists are distributed, and how many
// records still carry pre-migration fields.
type Summary struct {
	Records  int            `json:"records"`
	Removals map[string]int `json:"removals"`
	Lists    map[string]int `json:"lists"`
	Legacy   map[string]int `json:"legacy_fields,omitempty"`
}

// none is the bucket for records missing the counted field.
const none = "(none)"

// Collect profiles a parsed document.
func Collect(d *u.Document) (Summary, error) {
	s := newSummary()
	for _, id := range d.Keys() {
		rec, err := d.Record(id)
		if err != nil {
			return Summary{}, err
		}
		s.Records++
		s.Removals[bucket(rec, "removal")]++
		s.Lists[bucket(rec, "list")]++
		for _, f := range u.LegacyFields {
			if rec.Has(f) {
				s.Legacy[f]++
			}
		}
	}
	return s, nil
}

// CollectRaw profiles raw JSON bytes without building a Document. Entries
// that are not objects are counted but contribute to no other buckets.
func CollectRaw(b []byte) (Summary, error) {
	if !gjson.ValidBytes(b) {
		return Summary{}, fmt.Errorf("profile: %w", u.ErrNotObject)
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return Summary{}, fmt.Errorf("profile: %w", u.ErrNotObject)
	}
	s := newSummary()
	root.ForEach(func(_, val gjson.Result) bool {
		s.Records++
		if !val.IsObject() {
			return true
		}
		s.Removals[rawBucket(val, "removal")]++
		s.Lists[rawBucket(val, "list")]++
		for _, f := range u.LegacyFields {
			if val.Get(f).Exists() {
				s.Legacy[f]++
			}
		}
		return true
	})
	return s, nil
}

func newSummary() Summary {
	return Summary{
		Removals: make(map[string]int),
		Lists:    make(map[string]int),
		Legacy:   make(map[string]int),
	}
}

func bucket(rec *u.Record, field string) string {
	if v, ok := rec.StringField(field); ok {
		return v
	}
	return none
}

func rawBucket(val gjson.Result, field string) string {
	if r := val.Get(field); r.Type == gjson.String {
		return r.String()
	}
	return none
}

// ReportText renders the summary as plain text, most frequent first.
func (s Summary) ReportText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Records: %d\n", s.Records)
	writeFreqs(&b, "Removal tiers", s.Removals)
	writeFreqs(&b, "Lists", s.Lists)
	if len(s.Legacy) > 0 {
		writeFreqs(&b, "Legacy fields", s.Legacy)
	}
	return b.String()
}

// ReportJSON renders the summary as indented JSON.
func (s Summary) ReportJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func writeFreqs(b *strings.Builder, title string, freqs map[string]int) {
	if len(freqs) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	type kv struct {
		k string
		v int
	}
	arr := make([]kv, 0, len(freqs))
	for k, v := range freqs {
		arr = append(arr, kv{k, v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].v != arr[j].v {
			return arr[i].v > arr[j].v
		}
		return arr[i].k < arr[j].k
	})
	for _, e := range arr {
		fmt.Fprintf(b, "  %-12s %d\n", e.k, e.v)
	}
}
