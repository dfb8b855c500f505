package validate

import (
	"context"
	"encoding/json"
	"testing"

	u "github.com/uadtools/listclean/pkg/uadlist"
)

func mustDoc(t *testing.T, src string) *u.Document {
	t.Helper()
	var d u.Document
	if err := json.Unmarshal([]byte(src), &d); err != nil {
		t.Fatal(err)
	}
	return &d
}

func TestInSet(t *testing.T) {
	d := mustDoc(t, `{"com.a": {"removal": "Safe"}, "com.b": {"removal": "Disruptive"}}`)
	tf := NewInSet("removal", u.KnownRemovals)
	if _, err := tf.Apply(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	bad := mustDoc(t, `{"com.a": {"removal": "Recommended"}}`)
	if _, err := tf.Apply(context.Background(), bad); err == nil {
		t.Fatal("expected error for legacy tier")
	}
}

func TestInSetSkipsAbsent(t *testing.T) {
	d := mustDoc(t, `{"com.a": {}, "com.b": {"removal": 1}}`)
	tf := NewInSet("removal", u.KnownRemovals)
	if _, err := tf.Apply(context.Background(), d); err != nil {
		t.Fatal(err)
	}
}

func TestRequired(t *testing.T) {
	d := mustDoc(t, `{"com.a": {"removal": "Safe", "list": "oem", "description": ""}}`)
	tf := &Required{Fields: []string{"removal", "list", "description"}}
	if _, err := tf.Apply(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	bad := mustDoc(t, `{"com.a": {"removal": "Safe"}}`)
	if _, err := tf.Apply(context.Background(), bad); err == nil {
		t.Fatal("expected error for missing fields")
	}
}
