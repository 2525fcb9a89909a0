package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	return catalogOf(
		&Message{ID: "b\tc", Str: []string{"x\ny"}, Comments: Comments{Reference: "b.js:1"}},
		&Message{Context: "animal", ID: "a dog", Plural: "{0} dogs", Str: []string{"pies", "psy"}, Comments: Comments{Reference: "a.js:5 b.js:2", Flag: "csharp-format"}},
	)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleCatalog()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "a dog", got[0]["msgid"])
	assert.Equal(t, "animal", got[0]["msgctxt"])
	assert.Equal(t, []any{"a.js:5", "b.js:2"}, got[0]["references"])
	assert.Equal(t, "csharp-format", got[0]["flag"])
	assert.NotContains(t, got[1], "msgctxt")
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sampleCatalog()))

	assert.Equal(t,
		"msgctxt\tmsgid\tmsgid_plural\tmsgstr\treferences\n"+
			"animal\ta dog\t{0} dogs\tpies | psy\ta.js:5 b.js:2\n"+
			"\tb\\tc\t\tx\\ny\tb.js:1\n",
		buf.String())
}

func TestExportFiles(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, ExportJSON(sampleCatalog(), jsonPath))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msgid": "a dog"`)

	tsvPath := filepath.Join(dir, "catalog.tsv")
	require.NoError(t, ExportTSV(sampleCatalog(), tsvPath))
	data, err = os.ReadFile(tsvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pies | psy")

	assert.Error(t, ExportJSON(sampleCatalog(), filepath.Join(dir, "missing", "catalog.json")))
}
