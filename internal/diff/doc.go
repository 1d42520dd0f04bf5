// Package diff compares an "old" and a "new" string word by word and renders the result.
//
// Comparing: Compare runs the word engine (package byword) on two strings and returns line-aligned blocks of fine-grained fragments. Segments walks those blocks as
// a stream of removed/unchanged/added runs of text, which is what the inline and side-by-side renderers consume.
//
// Representation: DiffText builds a Diff, a line-oriented view of the same comparison. A Diff holds the complete OldText/NewText and an ordered slice of hunks
// that, when concatenated, reconstruct both sides. Each hunk has an Op:
//   - OpEqual: unchanged region (OldText == NewText)
//   - OpInsert: text present only in the new side (OldText == "")
//   - OpDelete: text present only in the old side (NewText == "")
//   - OpReplace: text changed on both sides
//
// For non-equal hunks, Lines holds per-line changes; for non-equal lines, Spans holds intra-line segments computed by the word engine. Lines generally include the
// trailing '\n' if it was present in the input; Spans never contain '\n'.
//
// Invariants:
//   - concat(hunks.OldText) == Diff.OldText
//   - concat(hunks.NewText) == Diff.NewText
//   - If hunk.Op == OpEqual, hunk.Lines is nil; otherwise, concatenating the line texts equals the hunk text.
//   - If line.Op == OpEqual, line.Spans is nil; otherwise, concatenating the span texts equals the line text (allowing for an optional trailing '\n').
//
// Rendering:
//   - Diff.RenderUnifiedDiff emits a unified diff. With color, changed spans inside changed lines are highlighted.
//   - RenderInline interleaves removed and added text in a single flow.
//   - RenderSideBySide lays out old and new text in two width-limited columns, one row per line.
//   - RenderBlocks lists the raw blocks and fragments, for debugging.
//
// Offsets: All offsets in blocks are rune indices, not byte indices.
package diff
