// Package bitset implements a growable set of non-negative integers packed into 64-bit words, with range set/clear and a compact binary encoding.
package bitset

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	addressBitsPerWord = 6
	bitsPerWord        = 1 << addressBitsPerWord
	wordMask           = bitsPerWord - 1
	wordBytes          = 8
)

// ErrInvalidBinary is returned when decoding binary data whose length is not a multiple of the word size.
var ErrInvalidBinary = errors.New("bitset: binary length is not a multiple of 8")

// BitSet is a set of non-negative integers. The zero value is an empty set ready to use.
type BitSet struct {
	words []uint64
}

// New returns an empty BitSet with room for n bits without growing.
func New(n int) *BitSet {
	if n < 0 {
		n = 0
	}
	return &BitSet{words: make([]uint64, 0, (n+wordMask)>>addressBitsPerWord)}
}

// SetBit sets bit i. It panics if i < 0.
func (b *BitSet) SetBit(i int) {
	b.Set(i, i+1)
}

// ClearBit clears bit i. It panics if i < 0.
func (b *BitSet) ClearBit(i int) {
	b.Clear(i, i+1)
}

// Set sets the bits in [from, to). It is a no-op when from == to, and panics when from < 0 or from > to.
func (b *BitSet) Set(from, to int) {
	if from == to {
		return
	}
	checkRange(from, to)

	last := to - 1
	startWord, endWord := from>>addressBitsPerWord, last>>addressBitsPerWord
	b.grow(endWord + 1)

	startMask, endMask := masks(from, last)
	if startWord == endWord {
		b.words[startWord] |= startMask & endMask
		return
	}
	b.words[startWord] |= startMask
	for i := startWord + 1; i < endWord; i++ {
		b.words[i] = ^uint64(0)
	}
	b.words[endWord] |= endMask
}

// Clear clears the bits in [from, to). It is a no-op when from == to, and panics when from < 0 or from > to.
func (b *BitSet) Clear(from, to int) {
	if from == to {
		return
	}
	checkRange(from, to)

	last := to - 1
	startWord, endWord := from>>addressBitsPerWord, last>>addressBitsPerWord
	if startWord >= len(b.words) {
		return
	}

	startMask, endMask := masks(from, last)
	if startWord == endWord {
		b.words[startWord] &^= startMask & endMask
		b.trim()
		return
	}
	b.words[startWord] &^= startMask
	for i := startWord + 1; i < endWord && i < len(b.words); i++ {
		b.words[i] = 0
	}
	if endWord < len(b.words) {
		b.words[endWord] &^= endMask
	}
	b.trim()
}

// Has reports whether bit i is set. Negative indices are never set.
func (b *BitSet) Has(i int) bool {
	if i < 0 {
		return false
	}
	w := i >> addressBitsPerWord
	if w >= len(b.words) {
		return false
	}
	return b.words[w]&(1<<(uint(i)&wordMask)) != 0
}

// Len returns the number of set bits.
func (b *BitSet) Len() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	return len(b.words) == 0
}

// Equal reports whether b and other contain the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if len(b.words) != len(other.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String lists every non-zero word as "<index>: <64 binary digits>\n", most significant bit first.
func (b *BitSet) String() string {
	var sb strings.Builder
	for i, w := range b.words {
		if w == 0 {
			continue
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		s := strconv.FormatUint(w, 2)
		sb.WriteString(strings.Repeat("0", bitsPerWord-len(s)))
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarshalBinary encodes b as big-endian 64-bit words, one per slot from 0 up to the highest populated word. An empty set encodes to an empty slice.
func (b *BitSet) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(b.words)*wordBytes)
	for i, w := range b.words {
		binary.BigEndian.PutUint64(out[i*wordBytes:], w)
	}
	return out, nil
}

// UnmarshalBinary replaces the contents of b with data produced by MarshalBinary.
func (b *BitSet) UnmarshalBinary(data []byte) error {
	if len(data)%wordBytes != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidBinary, len(data))
	}
	words := make([]uint64, len(data)/wordBytes)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(data[i*wordBytes:])
	}
	b.words = words
	b.trim()
	return nil
}

// MarshalText encodes the binary form as standard base64.
func (b *BitSet) MarshalText() ([]byte, error) {
	raw, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// UnmarshalText decodes base64 text produced by MarshalText.
func (b *BitSet) UnmarshalText(text []byte) error {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(raw, text)
	if err != nil {
		return fmt.Errorf("bitset: unable to decode base64 string %q: %w", text, err)
	}
	return b.UnmarshalBinary(raw[:n])
}

func (b *BitSet) grow(n int) {
	if n <= len(b.words) {
		return
	}
	if n <= cap(b.words) {
		b.words = b.words[:n]
		return
	}
	words := make([]uint64, n, max(n, 2*cap(b.words)))
	copy(words, b.words)
	b.words = words
}

// trim drops trailing zero words so that Equal and MarshalBinary see a canonical form.
func (b *BitSet) trim() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	b.words = b.words[:n]
}

// masks returns the mask of bits >= from within from's word, and the mask of bits <= last within last's word.
func masks(from, last int) (uint64, uint64) {
	start := ^uint64(0) << (uint(from) & wordMask)
	end := ^uint64(0) >> (wordMask - (uint(last) & wordMask))
	return start, end
}

func checkRange(from, to int) {
	if from < 0 || from > to {
		panic(fmt.Sprintf("bitset: invalid range [%d, %d)", from, to))
	}
}
