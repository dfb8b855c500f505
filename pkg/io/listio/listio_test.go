package listio_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uadtools/listclean/pkg/io/listio"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

func TestReadKeepsOrder(t *testing.T) {
	d, err := listio.Read(strings.NewReader(`{"z": {}, "a": {}, "m": {}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())
}

func TestReadErrors(t *testing.T) {
	_, err := listio.Read(strings.NewReader(`[1, 2]`))
	assert.ErrorIs(t, err, u.ErrNotObject)

	_, err = listio.Read(strings.NewReader(`{"a": }`))
	assert.Error(t, err)

	_, err = listio.Read(strings.NewReader(`{} {}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestWriteFormatting(t *testing.T) {
	d, err := listio.Read(strings.NewReader(`{"com.a": {"description": "niño <&>", "removal": "Safe"}}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, listio.Write(&buf, d))
	want := `{
  "com.a": {
    "description": "niño <&>",
    "removal": "Safe"
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.json")
	d, err := listio.Read(strings.NewReader(`{"b": {"x": [1, 2, 3]}, "a": {}}`))
	require.NoError(t, err)
	require.NoError(t, listio.WriteFile(path, d))

	back, err := listio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, d.Keys(), back.Keys())
}

func TestReadFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.json.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(`{"com.a": {}}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	d, err := listio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.a"}, d.Keys())
}

func TestReadFileMissing(t *testing.T) {
	_, err := listio.ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, os.IsNotExist(err))
}
