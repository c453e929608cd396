package report_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/dirdigest/digester"
	"github.com/byte4ever/dirdigest/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = digester.Result{
	Root:      "/src/app",
	Output:    "/src/app/commit.hash",
	Algorithm: "sha256",
	Digest:    "abc123",
	Files:     []string{"a.txt", "b/c.txt"},
}

func TestRender_substitutes_variables(t *testing.T) {
	t.Parallel()

	got := report.Render(
		"{digest}  {algorithm} {files} files in {root} -> {output}\n",
		sample,
	)

	assert.Equal(
		t,
		"abc123  sha256 2 files in /src/app -> /src/app/commit.hash\n",
		got,
	)
}

func TestRender_unknown_variable_preserved(t *testing.T) {
	t.Parallel()

	assert.Equal(
		t,
		"{nope} abc123",
		report.Render("{nope} {digest}", sample),
	)
}

func TestRender_empty_format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", report.Render("", sample))
}

func TestJSON_writes_summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.JSON(&buf, sample))

	var got report.Summary

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, report.NewSummary(sample), got)
	assert.Equal(t, 2, got.Files)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}
