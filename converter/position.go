package converter

import (
	"sort"
	"unicode/utf8"
)

// lineIndex maps byte offsets of an input to line/column positions.
type lineIndex struct {
	src   string
	lines []int // byte offset of the first byte of each line
}

func newLineIndex(src string) *lineIndex {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &lineIndex{src: src, lines: lines}
}

func (l *lineIndex) position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.src) {
		offset = len(l.src)
	}

	line := sort.Search(len(l.lines), func(i int) bool { return l.lines[i] > offset }) - 1
	start := l.lines[line]

	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(l.src[start:offset]) + 1,
	}
}
