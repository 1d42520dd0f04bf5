package diff

import (
	"fmt"
	"strings"
)

// ANSI escape sequences shared by the renderers.
const (
	ansiReset      = "\x1b[0m"
	ansiRed        = "\x1b[31m"
	ansiGreen      = "\x1b[32m"
	ansiMagenta    = "\x1b[35m"
	ansiCyanBold   = "\x1b[1;36m"
	ansiReverse    = "\x1b[7m"
	ansiReverseOff = "\x1b[27m"
	ansiBlackFG    = "\x1b[30m"
	ansiPinkSpan   = "\x1b[48;5;217m" // removed text
	ansiGreenSpan  = "\x1b[48;5;114m" // added text
)

// unifiedRow is one output line of a unified diff before grouping.
type unifiedRow struct {
	tag    byte       // ' ', '+', '-'
	text   string     // line content without EOL
	spans  []DiffSpan // intra-line spans; only for rows of an OpReplace line
	oldPos int        // 1-based line number in the old text at this row
	newPos int        // 1-based line number in the new text at this row
}

// unifiedRows flattens d into rows, one per old/new line, with equal hunks expanded into context rows.
func (d Diff) unifiedRows() []unifiedRow {
	var rows []unifiedRow
	oldPos, newPos := 1, 1

	add := func(tag byte, text string, spans []DiffSpan) {
		core, _ := trimEOL(text, defaultEOL)
		rows = append(rows, unifiedRow{tag: tag, text: core, spans: spans, oldPos: oldPos, newPos: newPos})
		if tag != '+' {
			oldPos++
		}
		if tag != '-' {
			newPos++
		}
	}

	for _, h := range d.Hunks {
		if h.Op == OpEqual {
			for _, ln := range splitPreserveEOL(h.OldText, defaultEOL) {
				add(' ', ln, nil)
			}
			continue
		}
		for _, ln := range h.Lines {
			switch ln.Op {
			case OpEqual:
				add(' ', ln.OldText, nil)
			case OpDelete:
				add('-', ln.OldText, nil)
			case OpInsert:
				add('+', ln.NewText, nil)
			case OpReplace:
				add('-', ln.OldText, ln.Spans)
				add('+', ln.NewText, ln.Spans)
			}
		}
	}
	return rows
}

// unifiedGroups returns [start, end) row windows: each changed row plus contextSize rows around it, with windows separated by at most 2*contextSize context rows
// merged.
func unifiedGroups(rows []unifiedRow, contextSize int) [][2]int {
	contextSize = max(contextSize, 0)
	var groups [][2]int
	for i, r := range rows {
		if r.tag == ' ' {
			continue
		}
		start := max(i-contextSize, 0)
		end := min(i+contextSize+1, len(rows))
		if n := len(groups); n > 0 && start <= groups[n-1][1] {
			groups[n-1][1] = end
			continue
		}
		groups = append(groups, [2]int{start, end})
	}
	return groups
}

// RenderUnifiedDiff returns a unified diff. If color, the diff will include ANSI color markers, and within replaced lines the changed words are shown in reverse
// video. Spans whose difference the policy ignores are not highlighted.
//
// Two change groups separated by at most 2*contextSize unchanged lines share one @@ hunk. If d has no changes, only the file headers are returned.
func (d Diff) RenderUnifiedDiff(color bool, fromFilename string, toFilename string, contextSize int) string {
	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	out := []string{
		colorize("--- "+fromFilename, ansiCyanBold),
		colorize("+++ "+toFilename, ansiCyanBold),
	}

	rows := d.unifiedRows()
	for _, g := range unifiedGroups(rows, contextSize) {
		group := rows[g[0]:g[1]]

		oldCount, newCount := 0, 0
		for _, r := range group {
			if r.tag != '+' {
				oldCount++
			}
			if r.tag != '-' {
				newCount++
			}
		}
		out = append(out, colorize(fmt.Sprintf("@@ -%d,%d +%d,%d @@", group[0].oldPos, oldCount, group[0].newPos, newCount), ansiMagenta))

		for _, r := range group {
			switch r.tag {
			case '-':
				out = append(out, colorize("-"+r.content(color), ansiRed))
			case '+':
				out = append(out, colorize("+"+r.content(color), ansiGreen))
			default:
				out = append(out, " "+r.text)
			}
		}
	}

	return strings.Join(out, "\n")
}

// content returns the row text, with changed spans in reverse video if color.
func (r unifiedRow) content(color bool) string {
	if !color || r.spans == nil {
		return r.text
	}
	var b strings.Builder
	for _, sp := range r.spans {
		text := sp.OldText
		if r.tag == '+' {
			text = sp.NewText
		}
		if sp.Op == OpEqual || sp.Ignored || text == "" {
			b.WriteString(text)
			continue
		}
		b.WriteString(ansiReverse)
		b.WriteString(text)
		b.WriteString(ansiReverseOff)
	}
	return b.String()
}
