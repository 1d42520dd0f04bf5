package diff

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
	OpReplace
)

// Diff is a diff from old text to new text.
//
// As an illustration: imagine a config file is edited: two separate sections are edited in the middle of the file. This will produce:
//   - Hunks[0] will be OpEqual (the prefix of the file).
//   - Hunks[1] will contain the first change: a group of contiguous lines that were changed. OpReplace.
//   - Hunks[2] will be OpEqual (the lines between the edits).
//   - Hunks[3] will contain the second change. Imagine some code was strictly inserted. OpInsert.
//   - Hunks[last] will be OpEqual (the suffix of the file).
//
// Hunks are line-granular; words and punctuation only matter inside a hunk's Lines and Spans. See DiffText.
//
// Invariants:
//   - concat(Hunks.OldText) == OldText
//   - concat(Hunks.NewText) == NewText
type Diff struct {
	OldText string     // Entire original text.
	NewText string     // Entire revised text.
	Hunks   []DiffHunk // Ordered hunks that cover the whole diff and reconstruct OldText/NewText.
}

// DiffHunk represents a contiguous group of lines. The \n character is part of the hunk and line (ex: if a hunk is in the middle of some text is removed, OldText for that hunk would
// be \n terminated).
//
// Operations:
//   - OpEqual: OldText == NewText
//   - OpInsert: OldText=="" && NewText!=""
//   - OpDelete: OldText!="" && NewText==""
//   - OpReplace: OldText != "" and NewText != ""
//
// Invariants:
//   - If OpEqual, Lines is nil. Otherwise,
//   - concat(Lines.OldText) == OldText
//   - concat(Lines.NewText) == NewText
type DiffHunk struct {
	Op      Op         // Operation for this hunk (OpEqual, OpInsert, OpDelete, or OpReplace).
	OldText string     // Concatenation of old lines in this hunk; empty for inserts.
	NewText string     // Concatenation of new lines in this hunk; empty for deletes.
	Lines   []DiffLine // Per-line diffs when Op != OpEqual; nil when OpEqual.
}

// DiffLine is a diff on a single line. Each line usually ends with (and includes) \n, unless the input text to DiffText had no \n.
//
// Operations follow the pattern of DiffHunk.
//
// Invariants:
//   - If OpEqual, Spans is nil. Otherwise,
//   - concat(Spans.OldText) + \n? == OldText (\n? is an optional newline, since spans cannot contain \n, but lines usually do)
//   - concat(Spans.NewText) + \n? == NewText
type DiffLine struct {
	Op      Op         // Operation for this line (OpEqual, OpInsert, OpDelete, or OpReplace).
	OldText string     // Entire old line (including trailing newline if present); empty for inserts.
	NewText string     // Entire new line (including trailing newline if present); empty for deletes.
	Spans   []DiffSpan // Intra-line segments when Op != OpEqual; nil when OpEqual. Spans never contain newlines.
}

// DiffSpan is a diff within a line. It MUST NOT contain any \n.
//
// Operations follow the pattern of DiffHunk.
//
// Span boundaries come from the word engine: changed spans start and end on word or punctuation boundaries, and punctuation between matched words is matched on its
// own. A span whose difference the comparison policy hides (ex: re-indentation under byword.PolicyTrimWhitespace) is non-equal but has Ignored set.
type DiffSpan struct {
	Op      Op     // Operation performed by this span (OpEqual, OpInsert, OpDelete, or OpReplace).
	OldText string // Substring from the old line; empty for inserts.
	NewText string // Substring from the new line; empty for deletes.
	Ignored bool   // The texts differ only in whitespace the policy ignores. Never set for OpEqual.
}

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// opFor returns the Op describing a change from oldText to newText.
func opFor(oldText, newText string) Op {
	switch {
	case oldText == newText:
		return OpEqual
	case oldText == "":
		return OpInsert
	case newText == "":
		return OpDelete
	default:
		return OpReplace
	}
}

// defaultEOL is the EOL ('\n'). The word engine splits lines on '\n' only; a "\r" before it is ordinary whitespace.
const defaultEOL = "\n"
