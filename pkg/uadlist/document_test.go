package uadlist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRecordOps(t *testing.T) {
	var d Document
	err := json.Unmarshal([]byte(`{"com.a": {"removal": "Safe", "n": 1}}`), &d)
	require.NoError(t, err)

	rec, err := d.Record("com.a")
	require.NoError(t, err)

	v, ok := rec.StringField("removal")
	assert.True(t, ok)
	assert.Equal(t, "Safe", v)

	// non-string field reads as absent
	_, ok = rec.StringField("n")
	assert.False(t, ok)
	_, ok = rec.StringField("missing")
	assert.False(t, ok)

	rec.SetStringField("removal", "Unsafe")
	require.NoError(t, d.SetRecord("com.a", rec))
	out, err := json.Marshal(&d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"com.a": {"removal": "Unsafe", "n": 1}}`, string(out))
}

func TestDocumentMapRecords(t *testing.T) {
	var d Document
	err := json.Unmarshal([]byte(`{"com.a": {"x": 1}, "com.b": {"x": 2}}`), &d)
	require.NoError(t, err)

	var seen []string
	err = d.MapRecords(func(id string, rec *Record) error {
		seen = append(seen, id)
		rec.SetStringField("tag", id)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"com.a", "com.b"}, seen)

	rec, err := d.Record("com.b")
	require.NoError(t, err)
	v, ok := rec.StringField("tag")
	assert.True(t, ok)
	assert.Equal(t, "com.b", v)
}

func TestDocumentMapRecordsShapeError(t *testing.T) {
	var d Document
	err := json.Unmarshal([]byte(`{"com.a": {"x": 1}, "com.bad": "nope"}`), &d)
	require.NoError(t, err)

	err = d.MapRecords(func(id string, rec *Record) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotObject)
	assert.Contains(t, err.Error(), "com.bad")
}

func TestDocumentFlatten(t *testing.T) {
	var d Document
	err := json.Unmarshal([]byte(`{
		"com.a": {"list": "oem", "removal": "Safe", "description": "d"},
		"com.b": {"removal": "Unsafe"}
	}`), &d)
	require.NoError(t, err)

	recs, err := d.Flatten()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, FlatRecord{Package: "com.a", List: "oem", Removal: "Safe", Description: "d"}, recs[0])
	assert.Equal(t, FlatRecord{Package: "com.b", Removal: "Unsafe"}, recs[1])
}
