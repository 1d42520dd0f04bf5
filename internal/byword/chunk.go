package byword

import (
	"fmt"

	"github.com/codalotl/worddiff/internal/textutil"
)

// ChunkKind distinguishes words from newlines.
type ChunkKind int

const (
	ChunkWord ChunkKind = iota
	ChunkNewLine
)

// InlineChunk is a token of a text: a word spanning [Offset1, Offset2) or a single newline at Offset1 (Offset2 == Offset1+1).
//
// Two words are equal when their Content is equal, regardless of offsets. All newlines are equal to each other.
type InlineChunk struct {
	Kind    ChunkKind
	Content string
	Offset1 int
	Offset2 int
}

// newLineKey is the Key of every newline. No word can contain '\n', so it never collides with a word.
const newLineKey = "\n"

// Key returns the comparison key of c: its content for a word, or a shared key for newlines.
func (c InlineChunk) Key() string {
	if c.Kind == ChunkNewLine {
		return newLineKey
	}
	return c.Content
}

// IsNewLine reports whether c is a newline chunk.
func (c InlineChunk) IsNewLine() bool {
	return c.Kind == ChunkNewLine
}

func (c InlineChunk) String() string {
	if c.Kind == ChunkNewLine {
		return fmt.Sprintf("NL(%d)", c.Offset1)
	}
	return fmt.Sprintf("W(%d, %d, %q)", c.Offset1, c.Offset2, c.Content)
}

func wordChunk(text []rune, start, end int) InlineChunk {
	return InlineChunk{Kind: ChunkWord, Content: string(text[start:end]), Offset1: start, Offset2: end}
}

func newLineChunk(offset int) InlineChunk {
	return InlineChunk{Kind: ChunkNewLine, Content: newLineKey, Offset1: offset, Offset2: offset + 1}
}

// InlineChunks splits text into words and newlines. Runs of word characters form one word, each continuous-script character is a word of its own, and whitespace and
// punctuation only separate chunks.
func InlineChunks(text []rune) []InlineChunk {
	var chunks []InlineChunk
	wordStart := -1

	for offset, r := range text {
		if textutil.IsWordPart(r) {
			if wordStart == -1 {
				wordStart = offset
			}
			continue
		}

		if wordStart != -1 {
			chunks = append(chunks, wordChunk(text, wordStart, offset))
			wordStart = -1
		}
		switch {
		case textutil.IsAlpha(r):
			chunks = append(chunks, wordChunk(text, offset, offset+1))
		case r == '\n':
			chunks = append(chunks, newLineChunk(offset))
		}
	}

	if wordStart != -1 {
		chunks = append(chunks, wordChunk(text, wordStart, len(text)))
	}
	return chunks
}

func chunkKeys(chunks []InlineChunk) []string {
	keys := make([]string, len(chunks))
	for i, c := range chunks {
		keys[i] = c.Key()
	}
	return keys
}

func countNewLines(chunks []InlineChunk) int {
	n := 0
	for _, c := range chunks {
		if c.IsNewLine() {
			n++
		}
	}
	return n
}
