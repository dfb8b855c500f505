package standardize

import (
	"context"
	"encoding/json"
	"testing"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

func TestMapField(t *testing.T) {
	var d u.Document
	src := `{
		"com.a": {"removal": "Recommended"},
		"com.b": {"removal": "Unknown"},
		"com.c": {"removal": 7},
		"com.d": {}
	}`
	if err := json.Unmarshal([]byte(src), &d); err != nil {
		t.Fatal(err)
	}
	tf := &MapField{Field: "removal", Map: u.RemovalRenames}
	out, err := tf.Apply(context.Background(), &d)
	if err != nil {
		t.Fatal(err)
	}

	ra, _ := out.Record("com.a")
	if v, _ := ra.StringField("removal"); v != "Safe" {
		t.Fatalf("expected Safe, got %q", v)
	}
	rb, _ := out.Record("com.b")
	if v, _ := rb.StringField("removal"); v != "Unknown" {
		t.Fatalf("unmapped value changed: %q", v)
	}
	rc, _ := out.Record("com.c")
	if raw, _ := rc.Get("removal"); string(raw) != "7" {
		t.Fatalf("non-string value changed: %s", raw)
	}
	rd, _ := out.Record("com.d")
	if rd.Has("removal") {
		t.Fatal("field created on record without it")
	}
}
