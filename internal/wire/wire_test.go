package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	row, err := ParseRow("gen_bench/bm_vector_gen/1024,103674")
	require.NoError(t, err)

	assert.Equal(t, "gen_bench/bm_vector_gen", row.Family)
	assert.Equal(t, uint64(1024), row.Size)
	assert.Equal(t, uint64(103674), row.TimeNs)
	assert.Equal(t, "gen_bench/bm_vector_gen/1024", row.Name())
}

func TestParseRow_Malformed(t *testing.T) {
	bad := []string{
		"",
		"Name,Time (ns)",
		"noslashes,100",
		"only/one/segment",
		"a/b/notanumber,100",
		"a/b/10,notanumber",
		"a/b/10,100,extra",
		"a,b/c/10,100",
	}
	for _, line := range bad {
		_, err := ParseRow(line)
		assert.Error(t, err, "line %q should not parse", line)
	}
}

func TestRead(t *testing.T) {
	input := "Name,Time (ns)\nfoo/bar/10,100\nbaz/qux/10,200\n"
	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, Row{Family: "foo/bar", Size: 10, TimeNs: 100}, rows[0])
	assert.Equal(t, Row{Family: "baz/qux", Size: 10, TimeNs: 200}, rows[1])
}

func TestRead_HeaderOptional(t *testing.T) {
	rows, err := Read(strings.NewReader("foo/bar/10,100\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRead_MalformedRowReportsLine(t *testing.T) {
	input := "Name,Time (ns)\nfoo/bar/10,100\ngarbage\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "garbage")
}

func TestRead_HeaderOnlyOnFirstLine(t *testing.T) {
	input := "foo/bar/10,100\nName,Time (ns)\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
