package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText diffs oldText to newText, returning a Diff.
//
// Lines are matched with go-diff's line mode, and consecutive deleted/inserted lines form one hunk. Inside a hunk, the i-th deleted line is paired with the i-th
// inserted line and the pair is compared word by word with opts; leftover lines are pure deletes or inserts. An error is returned only if the word comparison fails.
func DiffText(oldText, newText string, opts Options) (Diff, error) {
	dmp := diffmatchpatch.New()

	// Diff based on lines:
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	lineDiffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(rOld, rNew, false))

	// Decode rune-string back to slice of original lines using the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var hunks []DiffHunk
	var dels []string
	var ins []string

	flush := func() error {
		if len(dels) == 0 && len(ins) == 0 {
			return nil
		}
		oldBlock := strings.Join(dels, "")
		newBlock := strings.Join(ins, "")
		lines, err := buildDiffLines(dels, ins, opts)
		if err != nil {
			return err
		}
		hunks = append(hunks, DiffHunk{Op: opFor(oldBlock, newBlock), OldText: oldBlock, NewText: newBlock, Lines: lines})
		dels = nil
		ins = nil
		return nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if err := flush(); err != nil {
				return Diff{}, err
			}
			eqLines := decode(d.Text)
			if len(eqLines) == 0 {
				continue
			}
			text := strings.Join(eqLines, "")
			hunks = append(hunks, DiffHunk{Op: OpEqual, OldText: text, NewText: text})
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	if err := flush(); err != nil {
		return Diff{}, err
	}

	diff := Diff{OldText: oldText, NewText: newText, Hunks: hunks}

	if err := diff.validate(); err != nil {
		panic(fmt.Errorf("DiffText: validate failed with %v", err))
	}

	return diff, nil
}

// buildDiffLines constructs DiffLine entries and inline spans.
func buildDiffLines(deleteLines, insertLines []string, opts Options) ([]DiffLine, error) {
	// Pair up replacements for min(len(delete), len(insert)); leftovers are pure deletes/inserts.
	n := min(len(deleteLines), len(insertLines))
	var lines []DiffLine

	for i := 0; i < n; i++ {
		oldLine := deleteLines[i]
		newLine := insertLines[i]
		if oldLine == newLine {
			lines = append(lines, DiffLine{Op: OpEqual, OldText: oldLine, NewText: newLine})
			continue
		}
		oldCore, _ := trimEOL(oldLine, defaultEOL)
		newCore, _ := trimEOL(newLine, defaultEOL)
		spans, err := wordSpans(oldCore, newCore, opts)
		if err != nil {
			return nil, err
		}
		lines = append(lines, DiffLine{Op: OpReplace, OldText: oldLine, NewText: newLine, Spans: spans})
	}
	for _, oldLine := range deleteLines[n:] {
		oldCore, _ := trimEOL(oldLine, defaultEOL)
		var spans []DiffSpan
		if len(oldCore) > 0 {
			spans = []DiffSpan{{Op: OpDelete, OldText: oldCore}}
		}
		lines = append(lines, DiffLine{Op: OpDelete, OldText: oldLine, Spans: spans})
	}
	for _, newLine := range insertLines[n:] {
		newCore, _ := trimEOL(newLine, defaultEOL)
		var spans []DiffSpan
		if len(newCore) > 0 {
			spans = []DiffSpan{{Op: OpInsert, NewText: newCore}}
		}
		lines = append(lines, DiffLine{Op: OpInsert, NewText: newLine, Spans: spans})
	}
	return lines, nil
}

// wordSpans splits a pair of lines (without EOL) into spans using the fragments of the word engine. Text between fragments that still differs, because opts.Policy
// hides its whitespace difference, becomes an Ignored span.
func wordSpans(oldLine, newLine string, opts Options) ([]DiffSpan, error) {
	oldRunes, newRunes := []rune(oldLine), []rune(newLine)
	blocks, err := compareRunes(oldRunes, newRunes, opts)
	if err != nil {
		return nil, err
	}

	var spans []DiffSpan
	prev1, prev2 := 0, 0
	add := func(end1, end2 int, changed bool) {
		oldText, newText := string(oldRunes[prev1:end1]), string(newRunes[prev2:end2])
		prev1, prev2 = end1, end2
		if oldText == "" && newText == "" {
			return
		}
		op := opFor(oldText, newText)
		spans = appendSpan(spans, DiffSpan{Op: op, OldText: oldText, NewText: newText, Ignored: op != OpEqual && !changed})
	}

	for _, b := range blocks {
		for _, f := range b.Fragments {
			add(b.Offsets.Start1+f.StartOffset1, b.Offsets.Start2+f.StartOffset2, false)
			add(b.Offsets.Start1+f.EndOffset1, b.Offsets.Start2+f.EndOffset2, true)
		}
	}
	add(len(oldRunes), len(newRunes), false)
	return spans, nil
}

// appendSpan appends s to spans, coalescing it into the last span when both are equal.
func appendSpan(spans []DiffSpan, s DiffSpan) []DiffSpan {
	if n := len(spans); n > 0 && s.Op == OpEqual && spans[n-1].Op == OpEqual {
		spans[n-1].OldText += s.OldText
		spans[n-1].NewText += s.NewText
		return spans
	}
	return append(spans, s)
}

// splitPreserveEOL splits text by eol and preserves the eol on each line, except possibly the last.
func splitPreserveEOL(text, eol string) []string {
	if text == "" {
		return nil
	}
	if eol == "" {
		eol = defaultEOL
	}
	var lines []string
	for {
		idx := strings.Index(text, eol)
		if idx == -1 {
			if text != "" {
				lines = append(lines, text)
			}
			break
		}
		lines = append(lines, text[:idx+len(eol)])
		text = text[idx+len(eol):]
		if text == "" {
			break
		}
	}
	return lines
}

// trimEOL removes a trailing eol from a line if present.
func trimEOL(line, eol string) (string, bool) {
	if eol != "" && strings.HasSuffix(line, eol) {
		return line[:len(line)-len(eol)], true
	}
	return line, false
}
