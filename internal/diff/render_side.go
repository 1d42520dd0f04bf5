package diff

import (
	"strings"

	"github.com/codalotl/worddiff/internal/byword"
	"github.com/codalotl/worddiff/internal/diffiter"
	"github.com/codalotl/worddiff/internal/termtext"
)

// sideTabWidth is how many spaces a tab takes in side-by-side output.
const sideTabWidth = 4

// minSideWidth is the narrowest total width RenderSideBySide will lay out.
const minSideWidth = 9

// sideRun is a piece of one line of one column.
type sideRun struct {
	text    string
	changed bool
}

// sideLine is one line of one column.
type sideLine []sideRun

func (l sideLine) changed() bool {
	for _, r := range l {
		if r.changed {
			return true
		}
	}
	return false
}

// RenderSideBySide lays out a comparison of text1 and text2 (blocks from Compare) in two columns that together span width terminal cells. Each block becomes a run
// of rows, so lines of a block stay next to their counterpart; the shorter side is padded with blank rows. Lines too long for a column are cut at a grapheme
// boundary.
//
// The gutter between the columns is "|" for rows with changes on both sides, "<" or ">" for rows with changes on one side only, and blank otherwise. With color,
// removed text is shown on a pink background and added text on a green one.
func RenderSideBySide(text1, text2 string, blocks []byword.LineBlock, width int, color bool) string {
	width = max(width, minSideWidth)
	colWidth := (width - 3) / 2

	r1, r2 := []rune(text1), []rune(text2)

	var b strings.Builder
	for _, block := range blocks {
		// Rebase the block so its segments cover exactly its own text.
		local := block
		local.Offsets = diffiter.Range{End1: block.Offsets.Len1(), End2: block.Offsets.Len2()}
		sub1 := r1[block.Offsets.Start1:block.Offsets.End1]
		sub2 := r2[block.Offsets.Start2:block.Offsets.End2]

		var left, right sideLines
		for seg := range segments(sub1, sub2, []byword.LineBlock{local}, true) {
			switch seg.Kind {
			case SegmentUnchangedBefore:
				left.add(seg.Text, false)
			case SegmentRemoved:
				left.add(seg.Text, true)
			case SegmentUnchangedAfter:
				right.add(seg.Text, false)
			case SegmentAdded:
				right.add(seg.Text, true)
			}
		}

		for i := 0; i < max(len(left.lines), len(right.lines)); i++ {
			var l, r sideLine
			hasL, hasR := i < len(left.lines), i < len(right.lines)
			if hasL {
				l = left.lines[i]
			}
			if hasR {
				r = right.lines[i]
			}

			gutter := " "
			switch {
			case hasL && hasR && (l.changed() || r.changed()):
				gutter = "|"
			case hasL && !hasR:
				gutter = "<"
			case hasR && !hasL:
				gutter = ">"
			}

			b.WriteString(renderSideCell(l, colWidth, color, ansiPinkSpan, true))
			b.WriteString(" " + gutter + " ")
			b.WriteString(strings.TrimRight(renderSideCell(r, colWidth, color, ansiGreenSpan, false), " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// sideLines accumulates segments of one column into lines.
type sideLines struct {
	lines []sideLine
	open  bool // the last line has not been ended by a newline
}

func (s *sideLines) add(text string, changed bool) {
	if text == "\n" {
		if !s.open {
			s.lines = append(s.lines, nil)
		}
		s.open = false
		return
	}
	if !s.open {
		s.lines = append(s.lines, nil)
		s.open = true
	}
	last := len(s.lines) - 1
	s.lines[last] = append(s.lines[last], sideRun{text: termtext.Sanitize(text, sideTabWidth), changed: changed})
}

// renderSideCell renders line cut to width cells. If pad, the result is padded with spaces to exactly width cells.
func renderSideCell(line sideLine, width int, color bool, bg string, pad bool) string {
	var b strings.Builder
	used := 0
	for _, run := range line {
		text, w := termtext.Truncate(run.text, width-used, nil)
		if run.changed && color && text != "" {
			b.WriteString(ansiBlackFG + bg + text + ansiReset)
		} else {
			b.WriteString(text)
		}
		used += w
		if w < termtext.Width(run.text, nil) {
			break
		}
	}
	if pad && used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}
