package diff

import (
	"fmt"
	"strings"

	"github.com/codalotl/worddiff/internal/byword"
)

// RenderInline renders a comparison of text1 and text2 (blocks from Compare) as one text: unchanged text as it appears in text2, with removed and added text in
// place. With color, removed text has a pink background and added text a green one; without, they are marked wdiff-style as "[-removed-]" and "{+added+}".
func RenderInline(text1, text2 string, blocks []byword.LineBlock, color bool) string {
	var b strings.Builder
	for seg := range Segments(text1, text2, blocks, true) {
		switch seg.Kind {
		case SegmentUnchangedAfter:
			b.WriteString(seg.Text)
		case SegmentRemoved:
			writeMarked(&b, seg.Text, color, ansiPinkSpan, "[-", "-]")
		case SegmentAdded:
			writeMarked(&b, seg.Text, color, ansiGreenSpan, "{+", "+}")
		}
	}
	return b.String()
}

// writeMarked writes text highlighted with background bg if color, else between prefix and suffix. A lone newline is written as-is.
func writeMarked(b *strings.Builder, text string, color bool, bg, prefix, suffix string) {
	switch {
	case text == "\n":
		b.WriteString(text)
	case color:
		b.WriteString(ansiBlackFG + bg)
		b.WriteString(text)
		b.WriteString(ansiReset)
	default:
		b.WriteString(prefix)
		b.WriteString(text)
		b.WriteString(suffix)
	}
}

// RenderBlocks lists blocks and their fragments with the text they cover, one line each. It is meant for debugging the word engine. Offsets are rune indices.
//
// Example:
//
//	block 1 [2, 4] - [2, 4] newlines 1/1
//	  [0, 1] - [0, 1] "b" -> "c"
func RenderBlocks(text1, text2 string, blocks []byword.LineBlock) string {
	r1, r2 := []rune(text1), []rune(text2)

	var b strings.Builder
	for i, block := range blocks {
		fmt.Fprintf(&b, "block %d %v newlines %d/%d\n", i, block.Offsets, block.NewLines1, block.NewLines2)
		sub1 := r1[block.Offsets.Start1:block.Offsets.End1]
		sub2 := r2[block.Offsets.Start2:block.Offsets.End2]
		for _, f := range block.Fragments {
			fmt.Fprintf(&b, "  %v %q -> %q\n", f, string(sub1[f.StartOffset1:f.EndOffset1]), string(sub2[f.StartOffset2:f.EndOffset2]))
		}
	}
	return b.String()
}
