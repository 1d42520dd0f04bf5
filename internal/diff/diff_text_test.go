package diff

import (
	"fmt"
	"testing"

	"github.com/codalotl/worddiff/internal/byword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffText_WordSpans(t *testing.T) {
	a := "if ok {\n\treturn foo(a, b)\n}\n"
	b := "if ok {\n\treturn bar(a; b)\n}\n"

	diff, err := DiffText(a, b, Options{})
	require.NoError(t, err)
	require.NoError(t, diff.validate())

	require.Len(t, diff.Hunks, 3)
	hunk := diff.Hunks[1]
	require.Equal(t, OpReplace, hunk.Op)
	require.Len(t, hunk.Lines, 1)

	expected := []DiffSpan{
		{Op: OpEqual, OldText: "\treturn ", NewText: "\treturn "},
		{Op: OpReplace, OldText: "foo", NewText: "bar"},
		{Op: OpEqual, OldText: "(a", NewText: "(a"},
		{Op: OpReplace, OldText: ",", NewText: ";"},
		{Op: OpEqual, OldText: " b)", NewText: " b)"},
	}
	assert.Equal(t, expected, hunk.Lines[0].Spans)
}

func TestDiffText_AddedLine(t *testing.T) {
	a := "// IsTestFunc reports whether f is a test.\n"
	b := "// IsTestFunc reports whether f is a test.\n// It validates signatures.\n"

	diff, err := DiffText(a, b, Options{})
	require.NoError(t, err)

	require.Len(t, diff.Hunks, 2)
	require.Equal(t, OpInsert, diff.Hunks[1].Op)
	require.Len(t, diff.Hunks[1].Lines, 1)
	line := diff.Hunks[1].Lines[0]
	require.Equal(t, OpInsert, line.Op)
	assert.Equal(t, []DiffSpan{{Op: OpInsert, NewText: "// It validates signatures."}}, line.Spans)
}

func TestDiffText_Policy(t *testing.T) {
	a := "\tx := 1\n"
	b := "    x := 1\n"

	diff, err := DiffText(a, b, Options{})
	require.NoError(t, err)
	require.Len(t, diff.Hunks, 1)
	require.Len(t, diff.Hunks[0].Lines, 1)
	assert.Equal(t, []DiffSpan{
		{Op: OpReplace, OldText: "\t", NewText: "    "},
		{Op: OpEqual, OldText: "x := 1", NewText: "x := 1"},
	}, diff.Hunks[0].Lines[0].Spans)

	diff, err = DiffText(a, b, Options{Policy: byword.PolicyTrimWhitespace})
	require.NoError(t, err)
	require.Len(t, diff.Hunks, 1)
	require.Len(t, diff.Hunks[0].Lines, 1)
	assert.Equal(t, []DiffSpan{
		{Op: OpReplace, OldText: "\tx := 1", NewText: "    x := 1", Ignored: true},
	}, diff.Hunks[0].Lines[0].Spans)
}

func TestValidate_Errors(t *testing.T) {
	bad := Diff{OldText: "a\n", NewText: "b\n", Hunks: []DiffHunk{{Op: OpEqual, OldText: "a\n", NewText: "b\n"}}}
	assert.ErrorContains(t, bad.validate(), "OpEqual requires OldText==NewText")

	bad = Diff{OldText: "a\n", NewText: "b\n", Hunks: []DiffHunk{{
		Op: OpReplace, OldText: "a\n", NewText: "b\n",
		Lines: []DiffLine{{Op: OpReplace, OldText: "a\n", NewText: "b\n", Spans: []DiffSpan{{Op: OpReplace, OldText: "a", NewText: "c"}}}},
	}}}
	assert.ErrorContains(t, bad.validate(), "spans do not reconstruct NewText")

	bad = Diff{OldText: "a", NewText: "", Hunks: nil}
	assert.ErrorContains(t, bad.validate(), "hunks do not reconstruct OldText")
}

func TestDiffText_Hunks(t *testing.T) {
	type hunkExpectation struct {
		op  Op
		old string
		new string
	}

	tests := []struct {
		name string
		old  string
		new  string
		want []hunkExpectation
	}{
		{
			name: "add whole file",
			old:  "",
			new:  "a\nb\n",
			want: []hunkExpectation{{op: OpInsert, old: "", new: "a\nb\n"}},
		},
		{
			name: "delete whole file",
			old:  "a\nb\n",
			new:  "",
			want: []hunkExpectation{{op: OpDelete, old: "a\nb\n", new: ""}},
		},
		{
			name: "no newlines - equal",
			old:  "hello",
			new:  "hello",
			want: []hunkExpectation{{op: OpEqual, old: "hello", new: "hello"}},
		},
		{
			name: "no newlines - add word in beginning",
			old:  "world",
			new:  "hello world",
			want: []hunkExpectation{{op: OpReplace, old: "world", new: "hello world"}},
		},
		{
			name: "no newlines - add word in middle",
			old:  "a c",
			new:  "a b c",
			want: []hunkExpectation{{op: OpReplace, old: "a c", new: "a b c"}},
		},
		{
			name: "no newlines - add word in end",
			old:  "hello",
			new:  "hello world",
			want: []hunkExpectation{{op: OpReplace, old: "hello", new: "hello world"}},
		},
		{
			name: "no newlines - delete word in middle",
			old:  "a b c",
			new:  "a c",
			want: []hunkExpectation{{op: OpReplace, old: "a b c", new: "a c"}},
		},
		{
			name: "no newlines - replace words",
			old:  "hello world",
			new:  "hello there",
			want: []hunkExpectation{{op: OpReplace, old: "hello world", new: "hello there"}},
		},
		{
			name: "equal whole text",
			old:  "a\nb\n",
			new:  "a\nb\n",
			want: []hunkExpectation{{op: OpEqual, old: "a\nb\n", new: "a\nb\n"}},
		},
		{
			name: "insert at end",
			old:  "a\nb\n",
			new:  "a\nb\nc\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\nb\n", new: "a\nb\n"},
				{op: OpInsert, old: "", new: "c\n"},
			},
		},
		{
			name: "delete at end",
			old:  "a\nb\nc\n",
			new:  "a\nb\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\nb\n", new: "a\nb\n"},
				{op: OpDelete, old: "c\n", new: ""},
			},
		},
		{
			name: "replace middle line",
			old:  "a\nb\nc\n",
			new:  "a\nX\nc\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\n", new: "a\n"},
				{op: OpReplace, old: "b\n", new: "X\n"},
				{op: OpEqual, old: "c\n", new: "c\n"},
			},
		},
		{
			name: "no trailing newline replace",
			old:  "a\nb",
			new:  "a\nbc",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\n", new: "a\n"},
				{op: OpReplace, old: "b", new: "bc"},
			},
		},
		{
			name: "windows - rn just kinda works",
			old:  "a\r\nb\r\n",
			new:  "a\r\nX\r\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\r\n", new: "a\r\n"},
				{op: OpReplace, old: "b\r\n", new: "X\r\n"},
			},
		},
		{
			name: "multiple edits",
			old:  "a\nb\nc\nd\ne\n",
			new:  "a\nz\nc\ny\ne\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\n", new: "a\n"},
				{op: OpReplace, old: "b\n", new: "z\n"},
				{op: OpEqual, old: "c\n", new: "c\n"},
				{op: OpReplace, old: "d\n", new: "y\n"},
				{op: OpEqual, old: "e\n", new: "e\n"},
			},
		},
		{
			name: "insert and delete",
			old:  "a\nb\nc\nd\ne\n",
			new:  "a\nb\nz\nc\ne\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\nb\n", new: "a\nb\n"},
				{op: OpInsert, old: "", new: "z\n"},
				{op: OpEqual, old: "c\n", new: "c\n"},
				{op: OpDelete, old: "d\n", new: ""},
				{op: OpEqual, old: "e\n", new: "e\n"},
			},
		},
		{
			name: "multiple inserted lines are coalesced into a single hunk",
			old:  "a\nb\nc\nd\ne\n",
			new:  "a\nb\nz\ny\nx\nd\ne\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\nb\n", new: "a\nb\n"},
				{op: OpReplace, old: "c\n", new: "z\ny\nx\n"},
				{op: OpEqual, old: "d\ne\n", new: "d\ne\n"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := DiffText(tc.old, tc.new, Options{})
			require.NoError(t, err)

			if err := d.validate(); err != nil {
				require.Fail(t, fmt.Sprintf("%s: validate produced err=%v", tc.name, err))
			}

			// Expected top-level hunks
			got := make([]hunkExpectation, 0, len(d.Hunks))
			for _, h := range d.Hunks {
				got = append(got, hunkExpectation{op: h.Op, old: h.OldText, new: h.NewText})
			}
			require.Equal(t, tc.want, got)
		})
	}
}
