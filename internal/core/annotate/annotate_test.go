package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addStart    = "<span style='background-color: #8d8'>"
	removeStart = "<span style='background-color: #d88'>"
)

func testAnnotator() *Annotator {
	return New(HTMLMarkup("#8d8", "#d88"))
}

var twoFileDiff = []string{
	"commit 4b825dc642cb6eb9a060e54bf8d69288fbee4904",
	"Author: Someone <someone@example.com>",
	"",
	"diff --git a/foo.txt b/foo.txt",
	"index 0000000..1111111 100644",
	"--- a/foo.txt",
	"+++ b/foo.txt",
	"@@ -1,2 +1,2 @@",
	" unchanged",
	"-old line",
	"+new line",
	"diff --git a/docs/bar.md b/docs/bar.md",
	"index 2222222..3333333 100644",
	"--- a/docs/bar.md",
	"+++ b/docs/bar.md",
	"@@ -1 +1 @@",
	"-removed text",
}

func TestAnnotate_TwoFileDiff(t *testing.T) {
	out, err := testAnnotator().Annotate(twoFileDiff)
	require.NoError(t, err)

	var markers []string
	for _, line := range out {
		assert.NotContains(t, line, "diff --git")
		if strings.Contains(line, "File: ") {
			markers = append(markers, line)
		}
	}

	require.Len(t, markers, 2)
	assert.Equal(t, "<div class=\"file\">File: foo.txt</div>", markers[0])
	assert.Equal(t, "<div class=\"file\">File: docs/bar.md</div>", markers[1])

	// Hunk headers are consumed along with the file block.
	for _, line := range out {
		assert.False(t, strings.HasPrefix(line, "@@ "), "hunk header survived: %q", line)
	}
}

func TestAnnotate_DiscardsPreamble(t *testing.T) {
	out, err := testAnnotator().Annotate(twoFileDiff)
	require.NoError(t, err)
	assert.NotContains(t, out, "commit 4b825dc642cb6eb9a060e54bf8d69288fbee4904")
}

func TestAnnotate_InvalidDiff(t *testing.T) {
	_, err := testAnnotator().Annotate([]string{"just", "some", "text"})
	require.ErrorIs(t, err, ErrInvalidDiff)
}

func TestAnnotate_NoHunkEnd(t *testing.T) {
	_, err := testAnnotator().Annotate([]string{
		"diff --git a/foo.txt b/foo.txt",
		"index 0000000..1111111 100644",
		"--- a/foo.txt",
		"+++ b/foo.txt",
	})
	require.ErrorIs(t, err, ErrNoHunkEnd)
}

func TestHighlightLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "removed line",
			in:   "-removed text",
			want: removeStart + "removed text</span><br>",
		},
		{
			name: "added line",
			in:   "+added text",
			want: addStart + "added text</span><br>",
		},
		{
			name: "word diff tokens",
			in:   "some [-old-]{+new+} words",
			want: "some " + removeStart + "old</span>" + addStart + "new</span> words",
		},
		{
			name: "empty line passes through",
			in:   "",
			want: "",
		},
		{
			name: "context line untouched",
			in:   " unchanged",
			want: " unchanged",
		},
		{
			name: "trailing whitespace stripped",
			in:   " unchanged\t ",
			want: " unchanged",
		},
		{
			name: "removed word at line start",
			in:   "[-gone-] rest",
			want: removeStart + "gone</span> rest",
		},
	}

	a := testAnnotator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.highlightLine(tt.in))
		})
	}
}

func TestStripFileHeaders_OrderPreserved(t *testing.T) {
	lines := []string{
		"diff --git a/a.txt b/a.txt",
		"--- a/a.txt",
		"+++ b/a.txt",
		"@@ -1 +1 @@",
		"-x",
		"diff --git a/b.txt b/b.txt",
		"@@ -1 +1 @@",
		"+y",
		"diff --git a/c.txt b/c.txt",
		"@@ -1 +1 @@",
		" z",
	}

	out, err := testAnnotator().stripFileHeaders(lines)
	require.NoError(t, err)

	want := []string{
		"<div class=\"file\">File: a.txt</div>",
		"-x",
		"<div class=\"file\">File: b.txt</div>",
		"+y",
		"<div class=\"file\">File: c.txt</div>",
		" z",
	}
	assert.Equal(t, want, out)
}
