package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	oldFile := transposeFile
	defer func() { transposeFile = oldFile }()
	transposeFile = ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTranspose_Stdout(t *testing.T) {
	out, err := runWithInput(t, "Name,Time (ns)\nfoo/bar/10,100\nbaz/qux/10,200\n")
	require.NoError(t, err)
	assert.Equal(t, "Size,foo/bar,baz/qux\n10,100,200\n", out)
}

func TestTranspose_MalformedInput(t *testing.T) {
	_, err := runWithInput(t, "Name,Time (ns)\nnot a benchmark row\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTranspose_FileEchoesInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	input := "Name,Time (ns)\nfoo/bar/10,100\n"

	out, err := runWithInput(t, input, "--file", path)
	require.NoError(t, err)

	// Raw input is echoed to stdout, pivoted table lands in the file.
	assert.Equal(t, input, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Size,foo/bar\n10,100\n", string(data))
}
